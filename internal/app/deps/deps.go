package deps

import (
	"context"
	"fmt"
	"sync"
	"time"
	"waterreminder/internal/config"
	dl "waterreminder/internal/core/domain/logging"
	"waterreminder/internal/core/domain/reminder"
	"waterreminder/internal/implementations/logging"
	"waterreminder/internal/implementations/presentation"
	remindernotifier "waterreminder/internal/implementations/reminder_notifier"
	"waterreminder/internal/implementations/settings"
	"waterreminder/internal/rabbitmq"

	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v9"
	"github.com/r3labs/sse/v2"
)

type Deps struct {
	Config *config.Config
	Logger dl.Logger

	Redis     *redis.Client
	Rabbitmq  *rabbitmq.Connection
	SseServer *sse.Server

	// Now must keep the monotonic clock reading (no UTC()).
	Now func() time.Time

	State              *reminder.State
	SettingsRepository reminder.SettingsRepository
	Presenter          reminder.Presenter
	Notifier           reminder.Notifier
}

func InitDeps() (*Deps, func()) {
	deps := &Deps{}

	deps.initConfig()

	closeLogger := deps.initLogger()
	flushSentry := deps.initSentry()
	closeRedisClient := deps.initRedisClient()
	closeRabbitmqConn := deps.initRabbitmqConnection()
	closeSseServer := deps.initSseServer()

	deps.Now = time.Now
	deps.SettingsRepository = deps.initSettingsRepository()
	deps.State = reminder.NewState(deps.loadInterval(), deps.Now())

	ssePresentation := presentation.NewSSE(deps.SseServer, deps.Config.SseStreamID)
	deps.Presenter = ssePresentation
	notifier := remindernotifier.New(deps.Logger, "sse", ssePresentation)
	closeAmqpNotifier := deps.initAmqpNotifier(notifier)
	deps.Notifier = notifier

	return deps, func() {
		closeFuncs := []func(){
			closeSseServer,
			closeAmqpNotifier,
			closeRabbitmqConn,
			closeRedisClient,
		}

		var wg sync.WaitGroup
		wg.Add(len(closeFuncs))
		for _, closeFunc := range closeFuncs {
			closeFunc := closeFunc
			go func() {
				closeFunc()
				wg.Done()
			}()
		}
		wg.Wait()

		flushSentry()
		closeLogger()
	}
}

func (deps *Deps) initConfig() {
	config, err := config.Load()
	if err != nil {
		panic(err)
	}
	deps.Config = config
}

func (deps *Deps) initLogger() func() {
	logger := logging.NewZapLogger(deps.Config.IsTestMode)
	deps.Logger = logger
	return func() { logger.Sync() }
}

func (deps *Deps) initSentry() func() {
	if deps.Config.SentryDsn != nil {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              deps.Config.SentryDsn.String(),
			TracesSampleRate: 0.01,
		})
		if err != nil {
			panic(fmt.Sprintf("could not init Sentry: %v\n", err))
		}
		deps.Logger = logging.NewSentryLogger(deps.Logger, sentry.CurrentHub())
		deps.Logger.Info(context.Background(), "Sentry has been successfully initialized.")
		return func() {
			ok := sentry.Flush(5 * time.Second)
			deps.Logger.Info(context.Background(), "Sentry events flushed.", dl.Entry("ok", ok))
		}
	}

	deps.Logger.Info(context.Background(), "Sentry is disabled.")
	return func() {}
}

func (deps *Deps) initRedisClient() func() {
	if deps.Config.SettingsRedisURL == "" {
		return func() {}
	}
	redisOpt, err := redis.ParseURL(deps.Config.SettingsRedisURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not parse Redis URL.", dl.Entry("err", err))
		panic(err)
	}
	redisClient := redis.NewClient(redisOpt)
	deps.Redis = redisClient
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down Redis client.")
		redisClient.Close()
		deps.Logger.Info(context.Background(), "Redis client shut down.")
	}
}

func (deps *Deps) initRabbitmqConnection() func() {
	if deps.Config.AmqpURL == "" {
		return func() {}
	}
	rabbitmqConnection, err := rabbitmq.Dial(deps.Config.AmqpURL, deps.Logger)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to RabbitMQ.", dl.Entry("err", err))
		panic("could not connect to RabbitMQ")
	}
	deps.Rabbitmq = rabbitmqConnection
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down RabbitMQ connection.")
		rabbitmqConnection.Close()
		deps.Logger.Info(context.Background(), "RabbitMQ connection shut down.")
	}
}

func (deps *Deps) initSseServer() func() {
	deps.SseServer = sse.New()
	deps.SseServer.AutoStream = true
	deps.SseServer.AutoReplay = false
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down SSE server.")
		deps.SseServer.Close()
		deps.Logger.Info(context.Background(), "SSE server shut down.")
	}
}

func (deps *Deps) initSettingsRepository() reminder.SettingsRepository {
	if deps.Redis != nil {
		deps.Logger.Info(context.Background(), "Using Redis settings storage.", dl.Entry("key", deps.Config.SettingsRedisKey))
		return settings.NewRedis(deps.Redis, deps.Config.SettingsRedisKey)
	}

	path := deps.Config.SettingsPath
	if path == "" {
		defaultPath, err := settings.DefaultFilePath(deps.Config.AppName)
		if err != nil {
			deps.Logger.Error(context.Background(), "Could not locate user config directory.", dl.Entry("err", err))
			panic(err)
		}
		path = defaultPath
	}
	deps.Logger.Info(context.Background(), "Using file settings storage.", dl.Entry("path", path))
	return settings.NewFile(path)
}

func (deps *Deps) loadInterval() reminder.Interval {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return loadInterval(ctx, deps.Logger, deps.SettingsRepository, deps.Config.Interval())
}

// loadInterval never fails: anything unreadable leaves def.
func loadInterval(
	ctx context.Context,
	log dl.Logger,
	repo reminder.SettingsRepository,
	def reminder.Interval,
) reminder.Interval {
	stored, err := repo.Load(ctx)
	if err != nil {
		log.Warning(ctx, "Could not load settings, using default interval.", dl.Entry("err", err), dl.Entry("interval", def))
		return def
	}
	interval := stored.ValueOr(def)
	log.Info(ctx, "Reminder interval loaded.", dl.Entry("interval", interval), dl.Entry("persisted", stored.IsPresent))
	return interval
}

func (deps *Deps) initAmqpNotifier(notifier *remindernotifier.Notifier) func() {
	if deps.Rabbitmq == nil {
		return func() {}
	}
	rabbitmqChannel, err := deps.Rabbitmq.Channel()
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not create RabbitMQ channel.", dl.Entry("err", err))
		panic(err)
	}
	if err := rabbitmqChannel.DeclareFanoutExchange(deps.Config.AmqpExchange); err != nil {
		deps.Logger.Error(context.Background(), "Could not create RabbitMQ exchange.", dl.Entry("err", err))
		panic(err)
	}

	notifier.With("amqp", remindernotifier.NewAMQP(deps.Logger, rabbitmqChannel, deps.Config.AmqpExchange, deps.Now))

	return func() {
		deps.Logger.Info(context.Background(), "Shutting down AMQP notifier.")
		rabbitmqChannel.Close()
		deps.Logger.Info(context.Background(), "AMQP notifier shut down.")
	}
}
