package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"time"

	"videau/internal/entity"
	"videau/internal/repo/persistent"
	"videau/internal/usecase"
	"videau/pkg/config"
	"videau/pkg/database"
	"videau/pkg/jwt"
	"videau/pkg/logger"

	"gorm.io/gorm"
)

type seedUser struct {
	name     string
	username string
	password string
}

type seedVideo struct {
	owner       string
	title       string
	category    string
	url         string
	description string
}

var testUsers = []seedUser{
	{"Alice Martin", "alice", "password123"},
	{"Bob Garcia", "bob", "password123"},
	{"Charlie Kim", "charlie", "password123"},
}

var testVideos = []seedVideo{
	{"alice", "Sunrise timelapse", "nature", "https://www.youtube.com/watch?v=aqz-KE-bpKQ", "Six hours of sunrise in two minutes"},
	{"alice", "Sourdough from scratch", "cooking", "https://www.youtube.com/watch?v=2vX1B0k3yZg", "Starter, folds and the bake"},
	{"bob", "Go concurrency patterns", "programming", "https://www.youtube.com/watch?v=f6kdp27TYZs", "Channels, select and pipelines"},
	{"bob", "Mountain trail run", "sport", "https://www.youtube.com/watch?v=JGwWNGJdvx8", "Twenty kilometres along the ridge"},
	{"charlie", "Jazz piano basics", "music", "https://www.youtube.com/watch?v=Oo3GZk0ZJ1E", "Voicings every beginner should know"},
}

func main() {
	var timeout time.Duration
	flag.DurationVar(&timeout, "timeout", time.Minute, "Maximum time spent seeding")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	logger.SetLevel(cfg.LogLevel)
	log := logger.New()

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	if err := persistent.AutoMigrate(db); err != nil {
		log.Error("Failed to migrate database: %v", err)
		panic(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := seedDatabase(ctx, db, cfg, log); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

// seedDatabase goes through the use cases so back-references stay consistent.
// Avatars use the default URL and no events are published.
func seedDatabase(ctx context.Context, db *gorm.DB, cfg *config.Config, log *logger.Logger) error {
	userRepo := persistent.NewUserRepository(db)
	videoRepo := persistent.NewVideoRepository(db)
	commentRepo := persistent.NewCommentRepository(db)

	users := usecase.NewUserUseCase(
		userRepo,
		usecase.NewPasswordHasher(cfg.BcryptCost),
		jwt.NewService(cfg.JWTSecret, cfg.JWTExpiration),
		nil,
		cfg.DefaultAvatarURL,
		log,
	)
	videos := usecase.NewVideoUseCase(videoRepo, userRepo, commentRepo, nil, log)
	comments := usecase.NewCommentUseCase(commentRepo, videoRepo, nil, log)

	userIDs := make(map[string]string, len(testUsers))
	created := 0
	for _, u := range testUsers {
		existing, err := userRepo.GetByUsername(ctx, u.username)
		if err == nil {
			log.Info("User %s already exists, skipping", u.username)
			userIDs[u.username] = existing.ID
			continue
		}
		if !errors.Is(err, entity.ErrNotFound) {
			return fmt.Errorf("failed to look up user %s: %w", u.username, err)
		}

		user, err := users.Register(ctx, usecase.RegisterInput{
			Name:     u.name,
			Username: u.username,
			Password: u.password,
		})
		if err != nil {
			return fmt.Errorf("failed to register %s: %w", u.username, err)
		}
		userIDs[u.username] = user.ID
		created++
		log.Info("Created user %s (%s)", user.Username, user.ID)
	}

	if created == 0 {
		log.Info("All demo users exist, nothing else to seed")
		return nil
	}

	videoIDs := make([]string, 0, len(testVideos))
	for _, v := range testVideos {
		video, err := videos.CreateVideo(ctx, userIDs[v.owner], usecase.CreateVideoInput{
			URL:         v.url,
			Title:       v.title,
			Category:    v.category,
			Description: v.description,
		})
		if err != nil {
			return fmt.Errorf("failed to create video %q: %w", v.title, err)
		}
		videoIDs = append(videoIDs, video.ID)
		log.Info("Created video %q for %s", video.Title, v.owner)
	}

	// Every user comments on and favourites the videos of the next one.
	for i, u := range testUsers {
		next := testUsers[(i+1)%len(testUsers)].username
		for j, v := range testVideos {
			if v.owner != next {
				continue
			}
			text := fmt.Sprintf("Great video, %s!", next)
			if _, err := comments.CreateComment(ctx, userIDs[u.username], videoIDs[j], usecase.CreateCommentInput{Text: text}); err != nil {
				return fmt.Errorf("failed to comment on %q: %w", v.title, err)
			}
			if err := videos.AddFavourite(ctx, userIDs[u.username], videoIDs[j]); err != nil {
				return fmt.Errorf("failed to favourite %q: %w", v.title, err)
			}
		}
	}

	log.Info("Seeded %d users and %d videos", created, len(videoIDs))
	return nil
}
