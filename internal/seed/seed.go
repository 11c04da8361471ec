package seed

import (
	"fmt"
	"log"
	"math/rand"

	"ripple/internal/models"

	"gorm.io/gorm"
)

// SeedOptions configures the seeder.
type SeedOptions struct {
	NumUsers    int
	NumPosts    int
	ShouldClean bool
	DryRun      bool
	SkipBcrypt  bool
	// MaxDays spreads generated created_at timestamps over this many days.
	MaxDays int
}

// The fixed category set. Categories are seeded once and never mutated
// through the API.
var (
	CategoryNames = []string{
		"Politics", "Entertainment", "Sports", "Technology",
		"Fashion", "Science", "Health", "Business",
	}
	CategorySlugs = []string{
		"politics", "entertainment", "sports", "technology",
		"fashion", "science", "health", "business",
	}
)

// SeedCategories inserts the fixed category set if missing. Safe to call on
// every boot.
func SeedCategories(db *gorm.DB) error {
	for i, name := range CategoryNames {
		category := models.Category{Name: name, Slug: CategorySlugs[i]}
		if err := db.Where("slug = ?", category.Slug).FirstOrCreate(&category).Error; err != nil {
			return fmt.Errorf("failed to seed category %q: %w", name, err)
		}
	}
	return nil
}

// Seed populates the database with demo users, posts, comments, likes and
// follow edges.
func Seed(db *gorm.DB, opts SeedOptions) error {
	log.Printf("Starting database seeding with %d users and %d posts...", opts.NumUsers, opts.NumPosts)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("Warning: could not clear all existing data, continuing anyway...")
		}
	}

	if err := SeedCategories(db); err != nil {
		return err
	}

	var categories []models.Category
	if err := db.Find(&categories).Error; err != nil {
		return err
	}

	factory := NewFactory(db, opts)

	users := make([]*models.User, 0, opts.NumUsers)
	for i := 0; i < opts.NumUsers; i++ {
		user, err := factory.CreateUser()
		if err != nil {
			return fmt.Errorf("failed to create user %d: %w", i, err)
		}
		users = append(users, user)
	}

	postTypes := []string{
		models.PostTypeText, models.PostTypeText,
		models.PostTypePhoto, models.PostTypeVideo, models.PostTypePoll,
	}
	posts := make([]*models.Post, 0, opts.NumPosts)
	for i := 0; i < opts.NumPosts; i++ {
		author := users[rand.Intn(len(users))]
		category := categories[rand.Intn(len(categories))]
		postType := postTypes[rand.Intn(len(postTypes))]
		post, err := factory.CreatePostWithTemplate(author, category.ID, postType)
		if err != nil {
			return fmt.Errorf("failed to create post %d: %w", i, err)
		}
		posts = append(posts, post)
	}

	// Social mesh: each user follows a handful of others and engages with a
	// random slice of posts.
	for _, user := range users {
		follows := rand.Intn(6)
		for j := 0; j < follows; j++ {
			target := users[rand.Intn(len(users))]
			if err := factory.CreateFollow(user, target); err != nil {
				// duplicate follow edges are expected with random picks
				continue
			}
		}

		for _, post := range posts {
			if rand.Float64() < 0.15 {
				_ = factory.CreateLike(user, post)
			}
			if rand.Float64() < 0.05 {
				if _, err := factory.CreateComment(user, post); err != nil {
					return err
				}
			}
		}
	}

	log.Printf("Seeding complete: %d users, %d posts", len(users), len(posts))
	return nil
}

func clearData(db *gorm.DB) error {
	// Delete in dependency order; raw DELETE bypasses soft deletes.
	for _, table := range []string{
		"poll_options", "polls", "likes", "comments",
		"followers", "posts", "users",
	} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			return err
		}
	}
	return nil
}
