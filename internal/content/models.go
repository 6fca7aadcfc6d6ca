package content

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Project is a portfolio entry that devlogs can reference.
type Project struct {
	bun.BaseModel `bun:"table:projects,alias:p"`

	ID          uuid.UUID `bun:",pk,type:uuid"                json:"id"`
	Title       string    `bun:"title,notnull"                json:"title"`
	Slug        string    `bun:"slug,notnull,unique"          json:"slug"`
	Description string    `bun:"description"                  json:"description"`
	IsFeatured  bool      `bun:"is_featured,notnull,default:false" json:"is_featured"`
	CreatedAt   time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt   time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`

	Devlogs []*Devlog `bun:"rel:has-many,join:id=project_id" json:"devlogs,omitempty"`
}

// Devlog is a development log entry with markdown content. Content is stored
// byte-for-byte as supplied; rendering happens only at read time.
type Devlog struct {
	bun.BaseModel `bun:"table:devlogs,alias:d"`

	ID          uuid.UUID  `bun:",pk,type:uuid"                json:"id"`
	Title       string     `bun:"title,notnull"                json:"title"`
	Slug        string     `bun:"slug,notnull,unique"          json:"slug"`
	Tagline     string     `bun:"tagline,notnull"              json:"tagline"`
	Content     string     `bun:"content"                      json:"content"`
	IsPublished bool       `bun:"is_published,notnull,default:false" json:"is_published"`
	ProjectID   *uuid.UUID `bun:"project_id,type:uuid,nullzero" json:"project_id,omitempty"`
	CreatedAt   time.Time  `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt   time.Time  `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`

	Project *Project `bun:"rel:belongs-to,join:project_id=id" json:"project,omitempty"`
}

// TaglineMaxLength bounds the devlog tagline column.
const TaglineMaxLength = 300
