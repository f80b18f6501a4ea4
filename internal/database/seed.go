package database

import (
	"fmt"
	"os"
	"path/filepath"

	"portfolio-backend/internal/database/models"
	applog "portfolio-backend/internal/logger"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// SeedFromYAML inserts seed records from YAML files in dataDir.
// Records are immutable once created, so seeding is insert-if-absent
// keyed by title; existing rows are never touched.
func SeedFromYAML(db *gorm.DB, dataDir string) error {
	if err := seedProjectsFromYAML(db, dataDir); err != nil {
		return err
	}
	if err := seedBlogPostsFromYAML(db, dataDir); err != nil {
		return err
	}
	return nil
}

func loadYAMLFile[T any](dataDir, filename string, decode func([]byte) ([]T, error)) ([]T, error) {
	path := filepath.Join(dataDir, filename)
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Seed file is optional
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return decode(b)
}

func decodeProjects(b []byte) ([]ProjectData, error) {
	var file ProjectsFile
	if err := yaml.Unmarshal(b, &file); err != nil {
		return nil, err
	}
	return file.Projects, nil
}

func decodeBlogPosts(b []byte) ([]BlogPostData, error) {
	var file BlogPostsFile
	if err := yaml.Unmarshal(b, &file); err != nil {
		return nil, err
	}
	return file.BlogPosts, nil
}

func seedProjectsFromYAML(db *gorm.DB, dataDir string) error {
	items, err := loadYAMLFile(dataDir, "projects.yaml", decodeProjects)
	if err != nil {
		return fmt.Errorf("load projects from YAML: %w", err)
	}
	if len(items) == 0 {
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		created := 0
		skipped := 0

		for _, p := range items {
			var existing models.Project
			lookup := tx.Where("title = ?", p.Title).Limit(1).Find(&existing)
			if lookup.Error != nil {
				return fmt.Errorf("query project %q: %w", p.Title, lookup.Error)
			}
			if lookup.RowsAffected > 0 {
				skipped++
				continue
			}

			project := models.Project{
				Title:       p.Title,
				Description: p.Description,
				Link:        p.Link,
			}
			if err := tx.Create(&project).Error; err != nil {
				return fmt.Errorf("create project %q: %w", p.Title, err)
			}
			created++
		}

		applog.New().Infof("Project seeding completed. %d created, %d skipped, %d total in YAML", created, skipped, len(items))
		return nil
	})
}

func seedBlogPostsFromYAML(db *gorm.DB, dataDir string) error {
	items, err := loadYAMLFile(dataDir, "blog_posts.yaml", decodeBlogPosts)
	if err != nil {
		return fmt.Errorf("load blog posts from YAML: %w", err)
	}
	if len(items) == 0 {
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		created := 0
		skipped := 0

		for _, p := range items {
			var existing models.BlogPost
			lookup := tx.Where("title = ?", p.Title).Limit(1).Find(&existing)
			if lookup.Error != nil {
				return fmt.Errorf("query blog post %q: %w", p.Title, lookup.Error)
			}
			if lookup.RowsAffected > 0 {
				skipped++
				continue
			}

			post := models.BlogPost{
				Title:   p.Title,
				Content: p.Content,
			}
			if err := tx.Create(&post).Error; err != nil {
				return fmt.Errorf("create blog post %q: %w", p.Title, err)
			}
			created++
		}

		applog.New().Infof("Blog post seeding completed. %d created, %d skipped, %d total in YAML", created, skipped, len(items))
		return nil
	})
}
