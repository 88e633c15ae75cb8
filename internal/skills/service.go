// Package skills keeps the user's skill profile and dream job, and pays the
// coins the skill matcher hands out.
package skills

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/MrJamesThe3rd/careercoin/internal/ledger"
	"github.com/MrJamesThe3rd/careercoin/internal/roadmap"
)

const (
	AddSkillBonus     = 10
	SelectCareerBonus = 50
	ReferralBonus     = 200
)

var (
	ErrEmptySkill  = errors.New("skill is empty")
	ErrEmptyCareer = errors.New("career is empty")
)

// Profile is what the user told us about themselves.
type Profile struct {
	Skills   []string `json:"skills"`
	DreamJob string   `json:"dreamJob"`
}

//go:generate mockgen -source=service.go -destination=service_mock.go -package=skills
type Repository interface {
	Load(ctx context.Context) (Profile, error)
	Save(ctx context.Context, p Profile) error
}

type Earner interface {
	EarnCoins(ctx context.Context, amount int64, description string) (*ledger.Transaction, error)
}

type Matcher interface {
	SuggestSkills(job string) []string
	SuggestCareers(ctx context.Context, skills []string) ([]string, error)
}

// RoadmapSetter installs the roadmap generated for a newly selected career.
type RoadmapSetter interface {
	Roadmap() (roadmap.Roadmap, bool)
	SetRoadmap(ctx context.Context, r roadmap.Roadmap) error
}

type Service struct {
	repo    Repository
	earner  Earner
	matcher Matcher
	tracker RoadmapSetter

	mu      sync.Mutex
	profile Profile
}

func NewService(repo Repository, earner Earner, matcher Matcher, tracker RoadmapSetter) *Service {
	return &Service{
		repo:    repo,
		earner:  earner,
		matcher: matcher,
		tracker: tracker,
	}
}

func (s *Service) Load(ctx context.Context) error {
	p, err := s.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("loading profile: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.profile = p

	return nil
}

func (s *Service) Profile() Profile {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Profile{Skills: slices.Clone(s.profile.Skills), DreamJob: s.profile.DreamJob}
}

// AddSkill records a new skill and pays a small bonus. Adding a skill the profile
// already has is a no-op and pays nothing.
func (s *Service) AddSkill(ctx context.Context, skill string) (*ledger.Transaction, error) {
	skill = strings.TrimSpace(skill)
	if skill == "" {
		return nil, ErrEmptySkill
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if slices.Contains(s.profile.Skills, skill) {
		return nil, nil
	}

	next := Profile{Skills: append(slices.Clone(s.profile.Skills), skill), DreamJob: s.profile.DreamJob}

	tx, err := s.saveAndEarn(ctx, next, AddSkillBonus, "Added skill: "+skill)
	if err != nil {
		return nil, err
	}

	return tx, nil
}

// RemoveSkill reports whether the skill was present.
func (s *Service) RemoveSkill(ctx context.Context, skill string) (bool, error) {
	skill = strings.TrimSpace(skill)

	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.Index(s.profile.Skills, skill)
	if i < 0 {
		return false, nil
	}

	next := Profile{Skills: slices.Delete(slices.Clone(s.profile.Skills), i, i+1), DreamJob: s.profile.DreamJob}
	if err := s.repo.Save(ctx, next); err != nil {
		return false, fmt.Errorf("saving profile: %w", err)
	}

	s.profile = next

	return true, nil
}

// Matches returns the careers the current skills point at.
func (s *Service) Matches(ctx context.Context) ([]string, error) {
	return s.matcher.SuggestCareers(ctx, s.Profile().Skills)
}

// Suggestions lists skills typical for job that the profile does not have yet.
// An empty job falls back to the dream job; with neither there is nothing to suggest.
func (s *Service) Suggestions(job string) []string {
	p := s.Profile()

	job = strings.TrimSpace(job)
	if job == "" {
		job = p.DreamJob
	}

	if job == "" {
		return nil
	}

	return slices.DeleteFunc(s.matcher.SuggestSkills(job), func(skill string) bool {
		return slices.Contains(p.Skills, skill)
	})
}

// SelectCareer makes career the dream job, installs a fresh roadmap for it and
// pays the selection bonus. The bonus is paid last: when installing the roadmap
// fails nothing is credited and the profile is restored. When the award fails the
// profile and any previous roadmap are restored.
func (s *Service) SelectCareer(ctx context.Context, career string) (roadmap.Roadmap, *ledger.Transaction, error) {
	career = strings.TrimSpace(career)
	if career == "" {
		return roadmap.Roadmap{}, nil, ErrEmptyCareer
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := Profile{Skills: slices.Clone(s.profile.Skills), DreamJob: career}
	if err := s.repo.Save(ctx, next); err != nil {
		return roadmap.Roadmap{}, nil, fmt.Errorf("saving profile: %w", err)
	}

	prevRoadmap, hadRoadmap := s.tracker.Roadmap()

	r := roadmap.Generate(career)
	if err := s.tracker.SetRoadmap(ctx, r); err != nil {
		s.restoreProfile(ctx)
		return roadmap.Roadmap{}, nil, fmt.Errorf("installing roadmap: %w", err)
	}

	tx, err := s.earner.EarnCoins(ctx, SelectCareerBonus, "Selected career path: "+career)
	if err != nil {
		s.restoreProfile(ctx)

		if hadRoadmap {
			if rbErr := s.tracker.SetRoadmap(ctx, prevRoadmap); rbErr != nil {
				slog.Error("restoring roadmap after failed award", "error", rbErr)
			}
		}

		return roadmap.Roadmap{}, nil, fmt.Errorf("awarding bonus: %w", err)
	}

	s.profile = next

	slog.Info("career selected", "career", career)

	return r, tx, nil
}

func (s *Service) ReferFriend(ctx context.Context) (*ledger.Transaction, error) {
	tx, err := s.earner.EarnCoins(ctx, ReferralBonus, "Referred a friend to AIGURU")
	if err != nil {
		return nil, fmt.Errorf("awarding referral bonus: %w", err)
	}

	return tx, nil
}

// saveAndEarn persists next and pays amount. When the payment fails the previous
// profile is written back. Callers hold s.mu.
func (s *Service) saveAndEarn(ctx context.Context, next Profile, amount int64, description string) (*ledger.Transaction, error) {
	if err := s.repo.Save(ctx, next); err != nil {
		return nil, fmt.Errorf("saving profile: %w", err)
	}

	tx, err := s.earner.EarnCoins(ctx, amount, description)
	if err != nil {
		s.restoreProfile(ctx)
		return nil, fmt.Errorf("awarding bonus: %w", err)
	}

	s.profile = next

	return tx, nil
}

// restoreProfile writes the in-memory profile back after a failed change. Callers hold s.mu.
func (s *Service) restoreProfile(ctx context.Context) {
	if err := s.repo.Save(ctx, s.profile); err != nil {
		slog.Error("restoring profile after failed change", "error", err)
	}
}
