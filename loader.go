// Package envplus loads environment variables into the current process from
// a plain key=value text file. The comment marker, the key/value delimiter
// and the overwrite policy are all configurable, so any simple config format
// (.env included) can be used as a source.
//
// Typical use:
//
//	envplus.New().Activate()
//
//	secret := os.Getenv("SECRET")
//
// With a custom file format:
//
//	envplus.New().
//		WithFile("./special.env").
//		WithComment("@").
//		WithDelimiter("||").
//		Activate()
package envplus

import (
	"github.com/rs/zerolog/log"

	"github.com/Jint3x/env-plus/internal/envfile"
)

const (
	defaultFile      = "./.env_plus"
	defaultComment   = "//"
	defaultDelimiter = "="
)

// Loader describes one load pass over an env file. The zero value is not
// usable; start from New and chain the With* methods. Each method returns a
// modified copy, so a Loader can be treated as an immutable value.
type Loader struct {
	file      string
	comment   string
	delimiter string
	overwrite bool
	env       Environment
}

// New returns a Loader with the default settings: file "./.env_plus", "//"
// as the comment marker, "=" as the delimiter, overwrite disabled, and the
// real process environment as the target.
func New() Loader {
	return Loader{
		file:      defaultFile,
		comment:   defaultComment,
		delimiter: defaultDelimiter,
		overwrite: false,
		env:       OSEnvironment(),
	}
}

// WithFile changes the file the variables are parsed from. Any file can be
// used as long as its comment marker and delimiter are configured to match.
func (l Loader) WithFile(path string) Loader {
	l.file = path
	return l
}

// WithComment changes the comment marker. A line whose trimmed content starts
// with the marker is skipped entirely; on a data line, everything from the
// first occurrence of the marker onward is ignored.
//
// An empty marker is a prefix of every line, which comments out the whole
// file.
func (l Loader) WithComment(marker string) Loader {
	l.comment = marker
	return l
}

// WithDelimiter changes the string separating a key from its value. Only the
// first occurrence splits the line; later occurrences belong to the value.
func (l Loader) WithDelimiter(delim string) Loader {
	l.delimiter = delim
	return l
}

// WithOverwrite controls whether variables that already exist in the
// environment are replaced by values from the file. Disabled by default.
func (l Loader) WithOverwrite(overwrite bool) Loader {
	l.overwrite = overwrite
	return l
}

// WithEnvironment redirects the load into a different key-value store, such
// as a MapEnvironment. Activate then leaves the real process environment
// untouched.
func (l Loader) WithEnvironment(env Environment) Loader {
	l.env = env
	return l
}

// Activate reads the configured file and writes its entries into the
// environment, one line at a time in file order.
//
// A file that cannot be read (missing, unreadable, or not valid UTF-8) is
// reported on stderr and Activate returns false; the caller may continue with
// nothing loaded. A data line without the delimiter is a formatting error and
// panics with a *MalformedLineError naming the 1-based line number — the load
// is aborted at that point, earlier lines remain applied.
//
// The per-key check-then-set is not synchronized: two Activate calls running
// concurrently against the same environment race on keys they share, exactly
// as any other writer to the process environment table would.
func (l Loader) Activate() bool {
	lines, err := envfile.ReadLines(l.file)
	if err != nil {
		log.Error().Err(err).Str("file", l.file).Msg("env file could not be read")
		return false
	}
	for i, line := range lines {
		key, value, ok, err := parseLine(line, l.comment, l.delimiter, i+1)
		if err != nil {
			panic(err)
		}
		if !ok {
			continue
		}
		l.setVar(key, value)
	}
	return true
}

// setVar applies the overwrite policy for a single entry. Existing values win
// unless overwrite is enabled; a refused write is silent.
func (l Loader) setVar(key, value string) {
	if _, exists := l.env.Lookup(key); exists && !l.overwrite {
		return
	}
	_ = l.env.Set(key, value)
}
