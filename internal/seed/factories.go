// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"ripple/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Factory builds domain entities and persists them to the database.
// It is a thin helper used by seed presets and tests.
type Factory struct {
	db   *gorm.DB
	opts SeedOptions
	// synthetic ID counter when running in DryRun mode
	nextID uint
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, opts SeedOptions) *Factory {
	// seed gofakeit for richer content
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{db: db, opts: opts, nextID: 1000}
}

// CreateUser constructs and persists a sample `models.User`.
// Optional override functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	dob := gofakeit.DateRange(
		time.Now().AddDate(-45, 0, 0),
		time.Now().AddDate(-18, 0, 0),
	)
	user := &models.User{
		Username:    gofakeit.Username() + fmt.Sprintf("%d", gofakeit.Number(100, 999)),
		Email:       gofakeit.Email(),
		FullName:    gofakeit.Name(),
		Bio:         gofakeit.Sentence(10),
		AvatarURL:   fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
		DateOfBirth: &dob,
		Interests:   randomInterests(),
	}

	// Password handling: allow skipping bcrypt in dev fast mode
	if f.opts.SkipBcrypt {
		user.Password = "password123"
	} else {
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		user.Password = string(hashedPassword)
	}

	for _, override := range overrides {
		override(user)
	}

	if f.opts.DryRun {
		f.nextID++
		user.ID = f.nextID
		log.Printf("[dry-run] CreateUser: %s", user.Username)
		return user, nil
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func randomInterests() []string {
	picks := make([]string, 0, 3)
	perm := rand.Perm(len(CategoryNames))
	n := 1 + rand.Intn(3)
	for _, idx := range perm[:n] {
		picks = append(picks, CategorySlugs[idx])
	}
	return picks
}

// CreatePostWithTemplate creates a post for the given user of a specific
// post type (text, photo, video, poll) with valid media fields populated.
func (f *Factory) CreatePostWithTemplate(user *models.User, categoryID uint, postType string, overrides ...func(*models.Post)) (*models.Post, error) {
	post := &models.Post{
		Title:      gofakeit.Sentence(5),
		Content:    gofakeit.Paragraph(1, 3, 5, "\n"),
		UserID:     user.ID,
		CategoryID: categoryID,
		PostType:   postType,
	}

	// realistic created_at spread
	maxDays := f.opts.MaxDays
	if maxDays <= 0 {
		maxDays = 90
	}
	// #nosec G404: acceptable for seeding
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	daysBack := r.Intn(maxDays)
	hoursBack := r.Intn(24)
	minsBack := r.Intn(60)
	post.CreatedAt = time.Now().Add(-time.Duration(daysBack)*24*time.Hour - time.Duration(hoursBack)*time.Hour - time.Duration(minsBack)*time.Minute)

	switch postType {
	case models.PostTypePhoto:
		post.ImageURL = fmt.Sprintf("https://picsum.photos/seed/%s/800/800", gofakeit.UUID())
	case models.PostTypeVideo:
		post.VideoURL = fmt.Sprintf("https://videos.example.com/%s.mp4", gofakeit.UUID())
	case models.PostTypePoll:
		optionCount := 2 + r.Intn(3)
		options := make([]models.PollOption, 0, optionCount)
		for i := 0; i < optionCount; i++ {
			options = append(options, models.PollOption{OptionText: gofakeit.BuzzWord()})
		}
		post.Poll = &models.Poll{
			Question: gofakeit.Question(),
			Options:  options,
		}
	}

	for _, override := range overrides {
		override(post)
	}

	if f.opts.DryRun {
		f.nextID++
		post.ID = f.nextID
		log.Printf("[dry-run] CreatePost: type=%s user=%d title=%q", post.PostType, post.UserID, post.Title)
		return post, nil
	}

	if err := f.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// CreateComment constructs and persists a sample `models.Comment` on the
// provided post authored by the provided user.
func (f *Factory) CreateComment(user *models.User, post *models.Post, overrides ...func(*models.Comment)) (*models.Comment, error) {
	comment := &models.Comment{
		Content: gofakeit.Sentence(8),
		UserID:  user.ID,
		PostID:  post.ID,
	}

	for _, override := range overrides {
		override(comment)
	}

	if f.opts.DryRun {
		f.nextID++
		comment.ID = f.nextID
		return comment, nil
	}

	if err := f.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// CreateLike persists a like from `user` on `post`.
func (f *Factory) CreateLike(user *models.User, post *models.Post) error {
	if f.opts.DryRun {
		return nil
	}
	like := &models.Like{
		UserID: user.ID,
		PostID: post.ID,
	}
	return f.db.Create(like).Error
}

// CreateFollow persists a follow edge from `follower` to `following`.
func (f *Factory) CreateFollow(follower, following *models.User) error {
	if follower.ID == following.ID {
		return nil
	}
	if f.opts.DryRun {
		return nil
	}
	edge := &models.Follower{
		FollowerID:  follower.ID,
		FollowingID: following.ID,
	}
	return f.db.Create(edge).Error
}
