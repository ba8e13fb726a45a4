package logger

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"cloud.google.com/go/logging"
	"github.com/gin-gonic/gin"
	"google.golang.org/genproto/googleapis/api/monitoredres"

	"github.com/vinoterra/winery-registry/common"
)

const (
	// CtxLoggerKey is how request loggers are stored/retrieved.
	CtxLoggerKey = "app-logger"

	// parentLogID is the name of the log file for parent logging.
	parentLogID = "parent_logger"

	// childLogID is the name of the log file for child logging.
	childLogID = "child_logger"

	// labels keys for monitored resource definition
	moduleIDField  = "module_id"
	projectIDField = "project_id"
	versionIDField = "version_id"

	appEngineType = "gae_app"

	gcpLogging = "GCP_LOGGING"
)

var (
	parentLogger *logging.Logger
	childLogger  *logging.Logger
	resource     *monitoredres.MonitoredResource
	cloudLogging bool
)

// Provider returns the logger bound to the given context.
type Provider func(ctx context.Context) ILogger

type Logging struct {
}

// NewLogging initializes parent & child google cloud logging clients.
func NewLogging(ctx context.Context) (*Logging, error) {
	cloudLogging = !common.IsLocalhost

	var err error

	cloudLogging, err = strconv.ParseBool(common.GetEnv(gcpLogging, strconv.FormatBool(cloudLogging)))
	if err != nil {
		return nil, err
	}

	if cloudLogging {
		client, err := logging.NewClient(ctx, common.ProjectID)
		if err != nil {
			return nil, err
		}

		parentLogger = client.Logger(parentLogID)
		childLogger = client.Logger(childLogID)
	}

	resource = &monitoredres.MonitoredResource{
		Labels: map[string]string{
			moduleIDField:  common.GAEService,
			projectIDField: common.ProjectID,
			versionIDField: common.GAEVersion,
		},
		Type: appEngineType,
	}

	return &Logging{}, nil
}

// Logger returns the logger that was stored inside the context.
func (l *Logging) Logger(ctx context.Context) ILogger {
	return FromContext(ctx)
}

// NewLogger sets gin.Context with a new logger, with the related google trace id.
func NewLogger(ctx *gin.Context) (*Logger, error) {
	l := newDefaultLogger()

	var h string
	if ctx.Request != nil {
		h = ctx.Request.Header.Get("X-Cloud-Trace-Context")
	}

	if h != "" {
		if i := strings.IndexByte(h, '/'); i > 0 {
			if t := h[:i]; strings.Count(t, "0") != len(t) {
				l.trace = getTrace(t)
			}
		}
	}

	ctx.Set(CtxLoggerKey, l)

	return l, nil
}

// FromContext returns the logger that was stored in context.
// If there isn't a logger stored, returns a new logger.
func FromContext(ctx context.Context) ILogger {
	if l, ok := ctx.Value(CtxLoggerKey).(*Logger); ok {
		return l
	}

	return newDefaultLogger()
}

func getTrace(id string) string {
	return fmt.Sprintf("projects/%s/traces/%s", common.ProjectID, id)
}

// Logger buffers per-request log state and writes entries to cloud logging,
// falling back to the standard library logger when running locally.
type Logger struct {
	started     time.Time
	trace       string
	labels      map[string]string
	maxSeverity logging.Severity
}

func newDefaultLogger() *Logger {
	return &Logger{
		started:     time.Now(),
		labels:      make(map[string]string),
		maxSeverity: logging.Default,
	}
}

func (l *Logger) Trace() string {
	return l.trace
}

func (l *Logger) SetLabel(key, value string) {
	l.labels[key] = value
}

func (l *Logger) SetLabels(labels map[string]string) {
	for k, v := range labels {
		l.labels[k] = v
	}
}

// End emits the parent request entry that groups this request's child entries.
func (l *Logger) End(ctx *gin.Context) {
	if !cloudLogging || parentLogger == nil {
		return
	}

	entry := logging.Entry{
		Timestamp: time.Now(),
		Trace:     l.trace,
		Severity:  l.maxSeverity,
		Resource:  resource,
		Labels:    l.labels,
	}

	if ctx.Request != nil {
		entry.HTTPRequest = &logging.HTTPRequest{
			Request: ctx.Request,
			Status:  ctx.Writer.Status(),
			Latency: time.Since(l.started),
		}
	}

	parentLogger.Log(entry)
}

func logReqEntry(s logging.Severity, l *Logger, payload string) {
	if s > l.maxSeverity {
		l.maxSeverity = s
	}

	if !cloudLogging || childLogger == nil {
		log.Printf("%s: %s", s, payload)
		return
	}

	childLogger.Log(logging.Entry{
		Timestamp: time.Now(),
		Trace:     l.trace,
		Severity:  s,
		Resource:  resource,
		Payload:   payload,
	})
}

func (l *Logger) Debug(v ...interface{}) {
	logReqEntry(logging.Debug, l, fmt.Sprint(v...))
}

func (l *Logger) Info(v ...interface{}) {
	logReqEntry(logging.Info, l, fmt.Sprint(v...))
}

func (l *Logger) Print(v ...interface{}) {
	logReqEntry(logging.Info, l, fmt.Sprint(v...))
}

func (l *Logger) Warning(v ...interface{}) {
	logReqEntry(logging.Warning, l, fmt.Sprint(v...))
}

func (l *Logger) Error(v ...interface{}) {
	logReqEntry(logging.Error, l, fmt.Sprint(v...))
}

func (l *Logger) Debugf(format string, v ...interface{}) {
	logReqEntry(logging.Debug, l, fmt.Sprintf(format, v...))
}

func (l *Logger) Infof(format string, v ...interface{}) {
	logReqEntry(logging.Info, l, fmt.Sprintf(format, v...))
}

func (l *Logger) Printf(format string, v ...interface{}) {
	logReqEntry(logging.Info, l, fmt.Sprintf(format, v...))
}

func (l *Logger) Warningf(format string, v ...interface{}) {
	logReqEntry(logging.Warning, l, fmt.Sprintf(format, v...))
}

func (l *Logger) Errorf(format string, v ...interface{}) {
	logReqEntry(logging.Error, l, fmt.Sprintf(format, v...))
}
