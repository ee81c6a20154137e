package usecase

import (
	"context"
	"fmt"
	"strings"

	"serviexpress/internal/usecase/interfaces"
	"serviexpress/pkg"
)

// ISkillResolver maps human-readable category names to stable skill ids,
// preserving order so callers can report which names failed validation.

type ISkillResolver interface {
	MapNamesToIDs(ctx context.Context, names []string) ([]string, error)
}

type SkillResolver struct {
	repo interfaces.ISkillRepository
}

var _ ISkillResolver = (*SkillResolver)(nil)

func NewSkillResolver(repo interfaces.ISkillRepository) *SkillResolver {
	return &SkillResolver{repo: repo}
}

func (s *SkillResolver) MapNamesToIDs(ctx context.Context, names []string) ([]string, error) {
	ids := make([]string, 0, len(names))
	var unresolved []string
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			unresolved = append(unresolved, name)
			continue
		}
		skill, err := s.repo.GetByName(ctx, name)
		if err != nil {
			return nil, err
		}
		if skill.ID == "" {
			unresolved = append(unresolved, name)
			continue
		}
		ids = append(ids, skill.ID)
	}
	if len(unresolved) > 0 {
		return nil, pkg.NewNotFound(fmt.Sprintf("Unknown categories: %s", strings.Join(unresolved, ", ")))
	}
	return ids, nil
}
