package startup

import (
	"context"
	"fmt"
	"time"

	"hostelhub_client/authorization"
	"hostelhub_client/client"
	application "hostelhub_client/service"
	"hostelhub_client/startup/config"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.12.0"
)

// App wires the client core together: session, transport, dispatcher and
// notifier share one logger and one tracer.
type App struct {
	Config     *config.Config
	Logger     *logrus.Logger
	Session    *authorization.Session
	Client     *client.Client
	Dispatcher *application.Dispatcher
	Notifier   application.Notifier

	tp *sdktrace.TracerProvider
}

type CustomFormatter struct{}

func (f *CustomFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	msg := fmt.Sprintf("[%s] [%s] %s\n",
		entry.Time.Format("2006-01-02T15:04:05Z07:00"),
		entry.Level,
		entry.Message,
	)
	return []byte(msg), nil
}

func initLogger(logFilePath string) *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&CustomFormatter{})

	if logFilePath == "" {
		return logger
	}
	writer, err := rotatelogs.New(
		logFilePath+"_%Y%m%d%H%M",
		rotatelogs.WithRotationTime(24*time.Hour),
	)
	if err != nil {
		logger.Warnf("Failed to create rotatelogs writer, logging to stdout: %v", err)
		return logger
	}
	logger.SetOutput(writer)
	return logger
}

func NewApp(cfg *config.Config) (*App, error) {
	logger := initLogger(cfg.LogFilePath)

	tp, err := initTracing(cfg.JaegerAddress)
	if err != nil {
		return nil, err
	}
	tracer := tp.Tracer("hostelhub_client")

	session := authorization.NewSession()
	apiClient := client.New(cfg.APIBaseURL, session, logger, tracer)
	notifier := application.NewLogNotifier(logger)

	return &App{
		Config:     cfg,
		Logger:     logger,
		Session:    session,
		Client:     apiClient,
		Dispatcher: application.NewDispatcher(apiClient, notifier, logger),
		Notifier:   notifier,
		tp:         tp,
	}, nil
}

// NewChatSync builds a poll engine for one conversation view. Callers own
// the Stop call when the view goes away.
func (a *App) NewChatSync() *application.ChatSync {
	return application.NewChatSync(a.Client, a.Notifier, a.Logger, 0)
}

// Login exchanges credentials for a token and opens the process-wide
// session.
func (a *App) Login(ctx context.Context, email, password string) error {
	token, user, err := a.Client.Login(ctx, email, password)
	if err != nil {
		return err
	}
	a.Session.Login(user, token)
	a.Logger.Infof("Logged in as %s (%s)", user.Email, user.UserType)
	return nil
}

func (a *App) Logout() {
	a.Session.Logout()
}

func (a *App) Shutdown(ctx context.Context) {
	if err := a.tp.Shutdown(ctx); err != nil {
		a.Logger.Warnf("Error shutting down tracer provider: %v", err)
	}
}

func initTracing(jaegerAddress string) (*sdktrace.TracerProvider, error) {
	exp, err := newExporter(jaegerAddress)
	if err != nil {
		return nil, err
	}
	tp := newTraceProvider(exp)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})
	return tp, nil
}

func newExporter(address string) (*jaeger.Exporter, error) {
	return jaeger.New(jaeger.WithCollectorEndpoint(jaeger.WithEndpoint(address)))
}

func newTraceProvider(exp sdktrace.SpanExporter) *sdktrace.TracerProvider {
	r, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String("hostelhub_client"),
		),
	)
	if err != nil {
		panic(err)
	}

	return sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(r),
	)
}
