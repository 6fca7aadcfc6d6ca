// Command seed populates the configured database with sample projects and
// devlog entries for demos and local development.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strings"

	devlog "github.com/goliatone/go-devlog"
	"github.com/goliatone/go-devlog/internal/commands"
	contentcmd "github.com/goliatone/go-devlog/internal/commands/content"
	"github.com/goliatone/go-devlog/internal/content"
	"github.com/goliatone/go-devlog/internal/di"
	"github.com/goliatone/go-devlog/internal/storage"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

var projectTitles = []string{
	"Distributed Task Queue",
	"Realtime Metrics Dashboard",
	"Static Site Pipeline",
	"Kubernetes Deploy Automation",
	"GraphQL API Gateway",
	"Serverless Function Framework",
}

var projectDescriptions = []string{
	"A work-stealing task queue with at-least-once delivery and a pluggable broker layer.",
	"Dashboard streaming service metrics over websockets with real-time aggregation.",
	"Markdown-driven static site pipeline with incremental rebuilds and asset fingerprinting.",
	"Automated Kubernetes deployment system with Helm charts and auto-scaling configuration.",
	"High-performance GraphQL gateway handling complex queries with batched data loading.",
	"Framework for deploying and managing serverless functions behind an API gateway.",
}

var devlogTitles = []string{
	"Building a Scalable REST API",
	"Implementing JWT Authentication",
	"Optimizing Database Queries",
	"Setting Up Docker Compose",
	"Deploying to Production",
	"Writing Effective Unit Tests",
	"Debugging Memory Leaks",
	"Implementing Caching Strategies",
	"Refactoring Legacy Code",
	"Monitoring Application Performance",
}

var devlogTaglines = []string{
	"Lessons learned from building production-ready APIs",
	"A deep dive into modern authentication patterns",
	"Performance optimization techniques that actually work",
	"Containerization best practices for development",
	"Zero-downtime deployment strategies",
	"Testing approaches that catch bugs early",
	"Tools and techniques for finding memory issues",
	"When and how to implement caching effectively",
	"Strategies for improving code quality incrementally",
	"Observability patterns for modern applications",
}

const devlogContentTemplate = `# Introduction

This devlog covers my experience with %s. The journey was full of interesting
challenges and learning opportunities.

## The Challenge

When I started, I faced several key challenges:

- Understanding the requirements and constraints
- Choosing the right tools and technologies
- Balancing performance with maintainability

## The Solution

After researching various approaches, I settled on a practical architecture.

| Concern | Choice |
| ------- | ------ |
| Storage | PostgreSQL |
| Transport | HTTP/JSON |

## Key Takeaways

1. Planning is crucial
2. Test early and often
3. Document as you go[^1]

[^1]: Future you will thank present you.

## Conclusion

Even hostile snippets like <script>alert(1)</script> or
<img src=x onerror=alert(1)> are stored verbatim; rendering strips them.
`

func main() {
	_ = godotenv.Load()

	numProjects := flag.Int("projects", 3, "number of projects to create")
	numDevlogs := flag.Int("devlogs", 8, "number of devlogs to create")
	clear := flag.Bool("clear", false, "delete existing projects and devlogs before seeding")
	flag.Parse()

	if *numProjects < 0 || *numDevlogs < 0 {
		log.Fatal("number of projects and devlogs must be non-negative")
	}
	if *numProjects > len(projectTitles) {
		log.Printf("only %d project templates available", len(projectTitles))
		*numProjects = len(projectTitles)
	}
	if *numDevlogs > len(devlogTitles) {
		log.Printf("only %d devlog templates available", len(devlogTitles))
		*numDevlogs = len(devlogTitles)
	}

	ctx := context.Background()
	cfg := devlog.DefaultConfig()
	cfg.Storage.Driver = getEnv("DEVLOG_DB_DRIVER", "sqlite")
	cfg.Storage.DSN = getEnv("DEVLOG_DB_DSN", "file:devlog.db?_foreign_keys=on")

	db, err := storage.Open(cfg.Storage)
	if err != nil {
		log.Fatalf("open storage: %v", err)
	}
	defer db.Close()
	if err := devlog.RunMigrations(ctx, db); err != nil {
		log.Fatalf("run migrations: %v", err)
	}

	module, err := devlog.New(cfg, di.WithBunDB(db))
	if err != nil {
		log.Fatalf("initialise devlog: %v", err)
	}
	svc := module.Content()

	if *clear {
		if err := clearExisting(ctx, module); err != nil {
			log.Fatalf("clear existing data: %v", err)
		}
		fmt.Println("cleared existing sample data")
	}

	projects := make([]*content.Project, 0, *numProjects)
	for i := 0; i < *numProjects; i++ {
		project, err := svc.CreateProject(ctx, content.CreateProjectRequest{
			Title:       projectTitles[i],
			Description: projectDescriptions[i],
			IsFeatured:  i < *numProjects/2,
		})
		if err != nil {
			log.Fatalf("create project %q: %v", projectTitles[i], err)
		}
		projects = append(projects, project)
		fmt.Printf("created project: %s\n", project.Title)
	}

	entries := make([]*content.Devlog, 0, *numDevlogs)
	for i := 0; i < *numDevlogs; i++ {
		var projectID *uuid.UUID
		if len(projects) > 0 && rand.Float64() > 0.3 {
			projectID = &projects[rand.Intn(len(projects))].ID
		}
		record, err := svc.CreateDevlog(ctx, content.CreateDevlogRequest{
			Title:       devlogTitles[i],
			Tagline:     devlogTaglines[i],
			Content:     fmt.Sprintf(devlogContentTemplate, strings.ToLower(devlogTitles[i])),
			IsPublished: true,
			ProjectID:   projectID,
		})
		if err != nil {
			log.Fatalf("create devlog %q: %v", devlogTitles[i], err)
		}
		entries = append(entries, record)
		fmt.Printf("created devlog: %s\n", record.Title)
	}

	// Keep the last two entries back as drafts so the demo dataset exercises
	// the published filter.
	unpublish := contentcmd.NewUnpublishDevlogHandler(svc, commands.CommandLogger(module.LoggerProvider(), "seed"))
	for i := len(entries) - 2; i >= 0 && i < len(entries); i++ {
		if err := unpublish.Execute(ctx, contentcmd.UnpublishDevlogCommand{DevlogID: entries[i].ID}); err != nil {
			log.Fatalf("unpublish devlog %q: %v", entries[i].Title, err)
		}
		fmt.Printf("kept as draft: %s\n", entries[i].Title)
	}

	fmt.Println("sample data generation complete")
}

// clearExisting removes every devlog and project through the bulk delete
// commands. Devlogs go first so project deletion has nothing left to detach.
func clearExisting(ctx context.Context, module *devlog.Module) error {
	svc := module.Content()
	logger := commands.CommandLogger(module.LoggerProvider(), "seed")

	devlogs, err := svc.ListDevlogs(ctx, content.DevlogQuery{})
	if err != nil {
		return err
	}
	if len(devlogs) > 0 {
		ids := make([]uuid.UUID, 0, len(devlogs))
		for _, record := range devlogs {
			ids = append(ids, record.ID)
		}
		deleteDevlogs := contentcmd.NewDeleteDevlogsHandler(svc, logger)
		if err := deleteDevlogs.Execute(ctx, contentcmd.DeleteDevlogsCommand{DevlogIDs: ids}); err != nil {
			return err
		}
	}

	projects, err := svc.ListProjects(ctx, content.ProjectQuery{})
	if err != nil {
		return err
	}
	if len(projects) > 0 {
		ids := make([]uuid.UUID, 0, len(projects))
		for _, record := range projects {
			ids = append(ids, record.ID)
		}
		deleteProjects := contentcmd.NewDeleteProjectsHandler(svc, logger)
		if err := deleteProjects.Execute(ctx, contentcmd.DeleteProjectsCommand{ProjectIDs: ids}); err != nil {
			return err
		}
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}
