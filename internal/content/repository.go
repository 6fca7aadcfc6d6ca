package content

import (
	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

func NewProjectRepository(db *bun.DB) repository.Repository[*Project] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Project]{
		NewRecord: func() *Project { return &Project{} },
		GetID: func(p *Project) uuid.UUID {
			return p.ID
		},
		SetID: func(p *Project, id uuid.UUID) {
			p.ID = id
		},
		GetIdentifier: func() string {
			return "slug"
		},
		GetIdentifierValue: func(p *Project) string {
			return p.Slug
		},
	})
}

func NewDevlogRepository(db *bun.DB) repository.Repository[*Devlog] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Devlog]{
		NewRecord: func() *Devlog { return &Devlog{} },
		GetID: func(d *Devlog) uuid.UUID {
			return d.ID
		},
		SetID: func(d *Devlog, id uuid.UUID) {
			d.ID = id
		},
		GetIdentifier: func() string {
			return "slug"
		},
		GetIdentifierValue: func(d *Devlog) string {
			return d.Slug
		},
	})
}
