// Command uniset-lsp is a Language Server Protocol server for uniset
// ruleset files.
package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"os"

	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/hemanta212/uniset/lsp"
)

var (
	debugFlag   = flag.Bool("debug", false, "enable debug logging")
	traceFlag   = flag.Bool("trace", false, "enable trace logging (very verbose)")
	logfileFlag = flag.String("logfile", "", "log file path (in addition to LSP window/logMessage)")
)

func main() {
	flag.Parse()

	level := zapcore.InfoLevel
	if *debugFlag || *traceFlag {
		level = zapcore.DebugLevel
	}

	startupConfig := zap.NewDevelopmentConfig()
	startupConfig.OutputPaths = []string{"stderr"}
	startupConfig.ErrorOutputPaths = []string{"stderr"}
	startupConfig.Level = zap.NewAtomicLevelAt(level)

	startupLogger, err := startupConfig.Build()
	if err != nil {
		panic(err)
	}
	startupLogger.Info("starting uniset-lsp", zap.Bool("debug", *debugFlag), zap.Bool("trace", *traceFlag))

	ctx := context.Background()
	if err := run(ctx, startupLogger, os.Stdin, os.Stdout, level, *logfileFlag); err != nil {
		if errors.Is(err, io.EOF) || err.Error() == "closed" {
			startupLogger.Info("client disconnected")
			return
		}
		startupLogger.Error("server error", zap.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, startupLogger *zap.Logger, in io.Reader, out io.Writer, level zapcore.Level, logfile string) error {
	stream := jsonrpc2.NewStream(&readWriteCloser{in, out})
	conn := jsonrpc2.NewConn(stream)
	client := protocol.ClientDispatcher(conn, startupLogger)

	logger := lsp.NewLSPLogger(client, fileOrStderrCore(startupLogger, logfile, level), level)
	logger.Info("LSP connection established")

	server := lsp.NewServer(client, logger)
	conn.Go(ctx, protocol.ServerHandler(server, nil))

	<-conn.Done()
	return conn.Err()
}

func fileOrStderrCore(startupLogger *zap.Logger, logfile string, level zapcore.Level) zapcore.Core {
	if logfile == "" {
		return stderrCore(level)
	}
	file, err := os.OpenFile(logfile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		startupLogger.Warn("failed to open logfile, falling back to stderr", zap.Error(err))
		return stderrCore(level)
	}
	return zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(file),
		level,
	)
}

func stderrCore(level zapcore.Level) zapcore.Core {
	return zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(os.Stderr),
		level,
	)
}

// readWriteCloser joins separate reader/writer streams into the
// io.ReadWriteCloser jsonrpc2.NewStream expects.
type readWriteCloser struct {
	io.Reader
	io.Writer
}

func (rwc *readWriteCloser) Close() error {
	if c, ok := rwc.Writer.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
