package serviceImp

import (
	"context"
	"log"
	"strings"
	"time"

	"elevare/entities"
	"elevare/pkg/ai"
	"elevare/pkg/notify"
	"elevare/pkg/roadmap/parser"
	"elevare/pkg/roadmap/repository"
	"elevare/pkg/roadmap/service"
)

const (
	TopicCompleted = "roadmap.completed"
	TopicFailed    = "roadmap.failed"
)

type RoadmapSvc struct {
	llm  ai.Client
	repo repository.RoadmapRepository
	bus  *notify.Bus // optional

	genTimeout    time.Duration
	streamTimeout time.Duration
}

func NewRoadmapService(llm ai.Client, repo repository.RoadmapRepository, bus *notify.Bus, genTimeout, streamTimeout time.Duration) *RoadmapSvc {
	if genTimeout <= 0 {
		genTimeout = 90 * time.Second
	}
	if streamTimeout <= 0 {
		streamTimeout = 300 * time.Second
	}
	return &RoadmapSvc{llm: llm, repo: repo, bus: bus, genTimeout: genTimeout, streamTimeout: streamTimeout}
}

func (s *RoadmapSvc) Generate(ctx context.Context, career, userID string) (*entities.Roadmap, error) {
	if err := validate(career, userID); err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, s.genTimeout)
	defer cancel()

	raw, err := s.llm.GenerateRoadmap(ctx, career)
	if err != nil {
		return nil, err
	}
	res := parser.Parse(raw)
	if res.Empty() {
		// keep the raw text for diagnosis; it is never persisted
		log.Printf("[roadmap] unparsable output for career=%q: %s", career, truncate(raw, 400))
		return nil, service.ErrUnparsable
	}

	m := &entities.Roadmap{
		UserID:      userID,
		Career:      career,
		Title:       res.Title,
		Description: res.Description,
		Content:     raw,
		Steps:       res.Steps,
		Status:      entities.RoadmapStatusCompleted,
	}
	if err := s.repo.Create(m); err != nil {
		return nil, err
	}
	s.publish(TopicCompleted, m)
	return m, nil
}

func (s *RoadmapSvc) StreamGenerate(ctx context.Context, career, userID string, onChunk func(string) error) (*entities.Roadmap, error) {
	if err := validate(career, userID); err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, s.streamTimeout)
	defer cancel()

	m := &entities.Roadmap{
		UserID: userID,
		Career: career,
		Status: entities.RoadmapStatusStreaming,
	}
	if err := s.repo.Create(m); err != nil {
		return nil, err
	}

	var buf strings.Builder
	err := s.llm.StreamRoadmap(ctx, career, func(chunk string) error {
		buf.WriteString(chunk)
		return onChunk(chunk)
	})
	m.Content = buf.String()

	if err == nil {
		res := parser.Parse(m.Content)
		if res.Empty() {
			log.Printf("[roadmap] unparsable stream for career=%q: %s", career, truncate(m.Content, 400))
			err = service.ErrUnparsable
		} else {
			m.Title = res.Title
			m.Description = res.Description
			m.Steps = res.Steps
		}
	}

	// Exactly one transition out of "streaming", done here by the creating
	// invocation.
	if err != nil {
		m.Status = entities.RoadmapStatusFailed
		if uerr := s.repo.Update(m); uerr != nil {
			log.Printf("[roadmap] mark failed id=%d: %v", m.RoadmapID, uerr)
		}
		s.publish(TopicFailed, m)
		return m, err
	}
	m.Status = entities.RoadmapStatusCompleted
	if uerr := s.repo.Update(m); uerr != nil {
		return m, uerr
	}
	s.publish(TopicCompleted, m)
	return m, nil
}

func (s *RoadmapSvc) ListByUser(userID string) ([]entities.Roadmap, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, service.ErrUserIDRequired
	}
	return s.repo.ListByUser(userID)
}

func (s *RoadmapSvc) GetByID(id uint) (*entities.Roadmap, error) { return s.repo.FindByID(id) }

func (s *RoadmapSvc) Delete(id uint) error { return s.repo.Delete(id) }

func (s *RoadmapSvc) publish(topic string, m *entities.Roadmap) {
	if s.bus != nil {
		s.bus.Publish(topic, m)
	}
}

func validate(career, userID string) error {
	if strings.TrimSpace(career) == "" {
		return service.ErrCareerRequired
	}
	if strings.TrimSpace(userID) == "" {
		return service.ErrUserIDRequired
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
