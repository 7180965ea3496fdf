package providers

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"bguard/internal/structures"
)

type TypeEnum int

const (
	TypeApp TypeEnum = iota
	TypeGet
	TypePost
)

type Logger interface {
	Errorf(t TypeEnum, format string, args ...interface{})
	Warnf(t TypeEnum, format string, args ...interface{})
	Infof(t TypeEnum, format string, args ...interface{})
	Debugf(t TypeEnum, format string, args ...interface{})
	Fatalf(t TypeEnum, format string, args ...interface{})
	Close()
}

// GetLogTypeByRequestType maps an HTTP method onto a log stream. Everything
// that is not a POST lands in the GET stream.
func GetLogTypeByRequestType(method string) TypeEnum {
	if method == "POST" {
		return TypePost
	}
	return TypeGet
}

type LogProvider struct {
	app   zerolog.Logger
	get   zerolog.Logger
	post  zerolog.Logger
	files []*os.File
}

func NewLogProvider(conf *structures.Config) (Logger, error) {
	level, err := zerolog.ParseLevel(conf.Logger.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", conf.Logger.Level, err)
	}

	mode := os.FileMode(conf.Logger.Mode)
	appFile, err := openLogFile(conf.Logger.Dir, "app.log", mode)
	if err != nil {
		return nil, err
	}
	httpFile, err := openLogFile(conf.Logger.Dir, "http.log", mode)
	if err != nil {
		appFile.Close()
		return nil, err
	}

	base := zerolog.New(appFile).Level(level).With().Timestamp().Logger()
	httpBase := zerolog.New(httpFile).Level(level).With().Timestamp().Logger()
	if conf.Debug {
		base = base.Output(zerolog.MultiLevelWriter(appFile, zerolog.ConsoleWriter{Out: os.Stderr}))
	}

	return &LogProvider{
		app:   base,
		get:   httpBase.With().Str("method", "GET").Logger(),
		post:  httpBase.With().Str("method", "POST").Logger(),
		files: []*os.File{appFile, httpFile},
	}, nil
}

func openLogFile(dir, name string, mode os.FileMode) (*os.File, error) {
	file, err := os.OpenFile(filepath.Join(dir, name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, mode)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", name, err)
	}
	return file, nil
}

func (l *LogProvider) loggerFor(t TypeEnum) *zerolog.Logger {
	switch t {
	case TypeGet:
		return &l.get
	case TypePost:
		return &l.post
	default:
		return &l.app
	}
}

func (l *LogProvider) Errorf(t TypeEnum, format string, args ...interface{}) {
	l.loggerFor(t).Error().Msgf(format, args...)
}

func (l *LogProvider) Warnf(t TypeEnum, format string, args ...interface{}) {
	l.loggerFor(t).Warn().Msgf(format, args...)
}

func (l *LogProvider) Infof(t TypeEnum, format string, args ...interface{}) {
	l.loggerFor(t).Info().Msgf(format, args...)
}

func (l *LogProvider) Debugf(t TypeEnum, format string, args ...interface{}) {
	l.loggerFor(t).Debug().Msgf(format, args...)
}

func (l *LogProvider) Fatalf(t TypeEnum, format string, args ...interface{}) {
	l.loggerFor(t).Fatal().Msgf(format, args...)
}

func (l *LogProvider) Close() {
	for _, f := range l.files {
		_ = f.Close()
	}
}
