package main

import (
	"context"
	"database/sql"
	"io/ioutil"
	"log"
	"net/http"
	"os"
	"time"

	"codequest/pkg/answers"
	"codequest/pkg/comments"
	"codequest/pkg/feed"
	"codequest/pkg/handlers"
	"codequest/pkg/middleware"
	"codequest/pkg/otp"
	"codequest/pkg/questions"
	"codequest/pkg/session"
	"codequest/pkg/tags"
	"codequest/pkg/user"

	"github.com/go-redis/redis/v8"
	_ "github.com/go-sql-driver/mysql"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

const createUsersSchema = `CREATE TABLE IF NOT EXISTS users (
	id int(11) unsigned NOT NULL AUTO_INCREMENT,
	username VARCHAR(50) NOT NULL,
	email VARCHAR(100) NOT NULL,
	password VARBINARY(100) NOT NULL,
	bio VARCHAR(500) NOT NULL DEFAULT '',
	avatar_url VARCHAR(255) NOT NULL DEFAULT '',
	language VARCHAR(8) NOT NULL DEFAULT 'en',
	reputation int(11) NOT NULL DEFAULT 0,
	PRIMARY KEY (id),
	UNIQUE KEY username_uniq (username)
) ENGINE=INNODB DEFAULT CHARSET=utf8;`

const createFriendsSchema = `CREATE TABLE IF NOT EXISTS friends (
	user_id int(11) unsigned NOT NULL,
	friend_id int(11) unsigned NOT NULL,
	PRIMARY KEY (user_id, friend_id)
) ENGINE=INNODB DEFAULT CHARSET=utf8;`

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, relying on the environment")
	}

	app := &Application{
		MongoConnectionString: envOrDefault("CODEQUEST_MONGO_URI", "mongodb://localhost:27017"),
		MongoDBName:           envOrDefault("CODEQUEST_MONGO_DB", "codequest_db"),
		MySQLConnectionString: envOrDefault("CODEQUEST_MYSQL_DSN", "root:qwer1234@tcp(localhost:3306)/codequest"),
		RedisOptions: &redis.Options{
			Addr:     envOrDefault("CODEQUEST_REDIS_ADDR", "localhost:6379"),
			Password: os.Getenv("CODEQUEST_REDIS_PASSWORD"),
			DB:       0,
		},
		ServerAddr:         envOrDefault("CODEQUEST_ADDR", "127.0.0.1:8000"),
		PrivateKeyLocation: envOrDefault("CODEQUEST_JWT_PRIVATE_KEY", "key.rsa"),
		PublicKeyLocation:  envOrDefault("CODEQUEST_JWT_PUBLIC_KEY", "key.rsa.pub"),
	}

	app.Run()
}

func envOrDefault(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}

	return fallback
}

type Application struct {
	MongoConnectionString string
	MongoDBName           string
	MySQLConnectionString string
	RedisOptions          *redis.Options

	ServerAddr         string
	PublicKeyLocation  string
	PrivateKeyLocation string

	HTTPServer *http.Server
}

func (a *Application) Run() {
	rdb := redis.NewClient(a.RedisOptions)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		panic(err.Error())
	}

	privateKeyBytes, err := ioutil.ReadFile(a.PrivateKeyLocation)
	if err != nil {
		panic(err)
	}

	publicKeyBytes, err := ioutil.ReadFile(a.PublicKeyLocation)
	if err != nil {
		panic(err)
	}

	smJWT, err := session.NewSessionsJWTManager(privateKeyBytes, publicKeyBytes)
	if err != nil {
		panic(err)
	}

	sm := session.NewSessionManagerRedis(rdb, smJWT)
	zapLogger, _ := zap.NewProduction()
	defer zapLogger.Sync() // flushes buffer, if any
	logger := zapLogger.Sugar()

	db, err := sql.Open("mysql", a.MySQLConnectionString)
	if err != nil {
		panic(err.Error())
	}

	defer db.Close()
	err = db.Ping()
	if err != nil {
		panic(err)
	}

	_, err = db.Exec(createUsersSchema)
	if err != nil {
		panic(err)
	}

	_, err = db.Exec(createFriendsSchema)
	if err != nil {
		panic(err)
	}

	userRepo := user.NewUserRepoSQL(db)

	ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := questions.NewMongoClient(ctx, a.MongoConnectionString)
	if err != nil {
		panic(err)
	}

	err = client.Ping(ctx, readpref.Primary())
	if err != nil {
		panic(err)
	}

	mongoDb := client.Database(a.MongoDBName)
	err = ensureQuotaIndex(ctx, mongoDb)
	if err != nil {
		panic(err)
	}

	questionsRepo := questions.NewQuestionsRepoMongo(mongoDb)
	answersRepo := answers.NewAnswersRepoMongo(mongoDb)
	tagsRepo := tags.NewTagsRepoMongo(mongoDb)
	commentsRepo := comments.NewCommentsRepoMongo(mongoDb)
	feedRepo := feed.NewPostsRepoMongo(mongoDb)
	quotaRepo := feed.NewQuotaRepoMongo(mongoDb)
	otpStore := otp.NewStore(rdb, &otp.LogSender{Logger: logger})

	userHandler := &handlers.UserHandler{
		Sm:     sm,
		Repo:   userRepo,
		Otp:    otpStore,
		Logger: logger,
	}

	questionHandler := &handlers.QuestionHandler{
		QuestionsRepo: questionsRepo,
		TagsRepo:      tagsRepo,
		CommentsRepo:  commentsRepo,
		UsersRepo:     userRepo,
		Logger:        logger,
	}

	answerHandler := &handlers.AnswerHandler{
		AnswersRepo:   answersRepo,
		QuestionsRepo: questionsRepo,
		UsersRepo:     userRepo,
		Logger:        logger,
	}

	commentHandler := &handlers.CommentHandler{
		CommentsRepo: commentsRepo,
		UsersRepo:    userRepo,
		Logger:       logger,
	}

	tagHandler := &handlers.TagHandler{TagsRepo: tagsRepo, Logger: logger}

	feedHandler := &handlers.FeedHandler{
		FeedRepo:  feedRepo,
		QuotaRepo: quotaRepo,
		UsersRepo: userRepo,
		Logger:    logger,
	}

	profileHandler := &handlers.ProfileHandler{
		UsersRepo:     userRepo,
		QuestionsRepo: questionsRepo,
		AnswersRepo:   answersRepo,
		Logger:        logger,
	}

	r := mux.NewRouter()
	api := r.PathPrefix("/api/").Subrouter()

	api.HandleFunc("/auth/register", userHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", userHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/me", userHandler.Me).Methods(http.MethodGet)
	api.HandleFunc("/auth/send-otp", userHandler.SendOTP).Methods(http.MethodPost)
	api.HandleFunc("/auth/verify-otp", userHandler.VerifyOTP).Methods(http.MethodPost)

	api.HandleFunc("/questions", questionHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/questions", questionHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/questions/{id}", questionHandler.GetByID).Methods(http.MethodGet)
	api.HandleFunc("/questions/{id}/vote", questionHandler.Vote).Methods(http.MethodPost)

	api.HandleFunc("/answers/question/{question_id}", answerHandler.ListByQuestion).Methods(http.MethodGet)
	api.HandleFunc("/answers", answerHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/answers/{id}/vote", answerHandler.Vote).Methods(http.MethodPost)

	api.HandleFunc("/comments/{parent_type}/{parent_id}", commentHandler.ListByParent).Methods(http.MethodGet)
	api.HandleFunc("/comments", commentHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/comments/{id}", commentHandler.Delete).Methods(http.MethodDelete)

	api.HandleFunc("/tags", tagHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/tags/popular", tagHandler.Popular).Methods(http.MethodGet)

	api.HandleFunc("/feed", feedHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/feed", feedHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/feed/quota", feedHandler.Quota).Methods(http.MethodGet)
	api.HandleFunc("/feed/{id}/like", feedHandler.Like).Methods(http.MethodPost)
	api.HandleFunc("/feed/{id}", feedHandler.Delete).Methods(http.MethodDelete)

	api.HandleFunc("/users/profile", profileHandler.UpdateProfile).Methods(http.MethodPut)
	api.HandleFunc("/users/{user_id:[0-9]+}/friend", profileHandler.AddFriend).Methods(http.MethodPost)
	api.HandleFunc("/users/{username}", profileHandler.GetProfile).Methods(http.MethodGet)

	api.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlers.WriteResponse(w, "not found", http.StatusNotFound)
	})

	handler := middleware.Auth(logger, sm, r)
	handler = middleware.Log(logger, handler)
	handler = middleware.Recover(logger, handler)

	srv := &http.Server{
		Handler:      handler,
		Addr:         a.ServerAddr,
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}
	a.HTTPServer = srv

	logger.Infof("Started server at %s", srv.Addr)
	log.Fatal(srv.ListenAndServe())
}

// ensureQuotaIndex keeps feed_quota reservations unique per user and
// day, the quota admission depends on it.
func ensureQuotaIndex(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("feed_quota").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user", Value: 1}, {Key: "day", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
