package service

import (
	"bytes"
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"brixia-rugby/backend/internal/dto"
	"brixia-rugby/backend/internal/model"
	"brixia-rugby/backend/internal/repository"
)

var (
	ErrNoteNotFound  = errors.New("note not found")
	ErrNoteForbidden = errors.New("only the author or an admin can change this note")
)

// NoteService staff notes written in markdown
type NoteService interface {
	Create(ctx context.Context, req *dto.CreateNoteRequest, authorID string) (*dto.NoteResponse, error)
	GetByID(ctx context.Context, id string) (*dto.NoteResponse, error)
	List(ctx context.Context, req *dto.NoteListRequest) ([]dto.NoteResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateNoteRequest, callerID, callerRole string) (*dto.NoteResponse, error)
	Delete(ctx context.Context, id, callerID, callerRole string) error
}

type noteService struct {
	repo   *repository.Repository
	logger *zap.Logger
	md     goldmark.Markdown
}

// NewNoteService creates a NoteService. Raw HTML in notes is not rendered.
func NewNoteService(repo *repository.Repository, logger *zap.Logger) NoteService {
	return &noteService{
		repo:   repo,
		logger: logger,
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(html.WithHardWraps()),
		),
	}
}

func (s *noteService) Create(ctx context.Context, req *dto.CreateNoteRequest, authorID string) (*dto.NoteResponse, error) {
	if _, err := s.repo.Player.GetByID(ctx, req.PlayerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}

	noteType := req.NoteType
	if noteType == "" {
		noteType = model.NoteGeneral
	}

	n := &model.Note{
		PlayerID: req.PlayerID,
		AuthorID: authorID,
		NoteType: noteType,
		Content:  strings.TrimSpace(req.Content),
	}
	n.CreatedBy = &authorID
	n.UpdatedBy = &authorID

	if err := s.repo.Note.Create(ctx, n); err != nil {
		s.logger.Error("create note failed", zap.Error(err))
		return nil, err
	}
	if author, err := s.repo.User.GetByID(ctx, authorID); err == nil {
		n.Author = author
	}
	return s.toNoteResponse(n), nil
}

func (s *noteService) GetByID(ctx context.Context, id string) (*dto.NoteResponse, error) {
	n, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.toNoteResponse(n), nil
}

func (s *noteService) List(ctx context.Context, req *dto.NoteListRequest) ([]dto.NoteResponse, error) {
	notes, err := s.repo.Note.ListByPlayer(ctx, req.PlayerID)
	if err != nil {
		s.logger.Error("list notes failed", zap.String("player_id", req.PlayerID), zap.Error(err))
		return nil, err
	}

	notes = filterNotes(notes, req.NoteType, req.AuthorID, req.Search)
	sortNotes(notes, req.Sort)

	result := make([]dto.NoteResponse, 0, len(notes))
	for i := range notes {
		result = append(result, *s.toNoteResponse(&notes[i]))
	}
	return result, nil
}

func (s *noteService) Update(ctx context.Context, id string, req *dto.UpdateNoteRequest, callerID, callerRole string) (*dto.NoteResponse, error) {
	n, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canEditNote(n, callerID, callerRole) {
		return nil, ErrNoteForbidden
	}

	if req.NoteType != nil {
		n.NoteType = *req.NoteType
	}
	if req.Content != nil {
		n.Content = strings.TrimSpace(*req.Content)
	}
	n.UpdatedBy = &callerID

	if err := s.repo.Note.Update(ctx, n); err != nil {
		s.logger.Error("update note failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return s.toNoteResponse(n), nil
}

func (s *noteService) Delete(ctx context.Context, id, callerID, callerRole string) error {
	n, err := s.get(ctx, id)
	if err != nil {
		return err
	}
	if !canEditNote(n, callerID, callerRole) {
		return ErrNoteForbidden
	}
	if err := s.repo.Note.Delete(ctx, id); err != nil {
		s.logger.Error("delete note failed", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

func (s *noteService) get(ctx context.Context, id string) (*model.Note, error) {
	n, err := s.repo.Note.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoteNotFound
		}
		s.logger.Error("lookup note failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return n, nil
}

// renderMarkdown falls back to the raw text if goldmark fails.
func (s *noteService) renderMarkdown(src string) string {
	var buf bytes.Buffer
	if err := s.md.Convert([]byte(src), &buf); err != nil {
		s.logger.Warn("render note markdown failed", zap.Error(err))
		return src
	}
	return buf.String()
}

func (s *noteService) toNoteResponse(n *model.Note) *dto.NoteResponse {
	resp := &dto.NoteResponse{
		ID:          n.NoteID,
		PlayerID:    n.PlayerID,
		AuthorID:    n.AuthorID,
		NoteType:    n.NoteType,
		Content:     n.Content,
		ContentHTML: s.renderMarkdown(n.Content),
		CreatedAt:   formatTimestamp(n.CreatedAt),
		UpdatedAt:   formatTimestamp(n.UpdatedAt),
	}
	if n.Author != nil {
		resp.AuthorName = n.Author.Name
	}
	return resp
}

func canEditNote(n *model.Note, callerID, callerRole string) bool {
	return callerRole == model.RoleAdmin || n.AuthorID == callerID
}

// filterNotes applies type, author and a case-insensitive text search over
// content and author name. Empty criteria match everything.
func filterNotes(notes []model.Note, noteType, authorID, search string) []model.Note {
	search = strings.ToLower(strings.TrimSpace(search))
	out := notes[:0:0]
	for _, n := range notes {
		if noteType != "" && n.NoteType != noteType {
			continue
		}
		if authorID != "" && n.AuthorID != authorID {
			continue
		}
		if search != "" {
			hay := strings.ToLower(n.Content)
			if n.Author != nil {
				hay += " " + strings.ToLower(n.Author.Name)
			}
			if !strings.Contains(hay, search) {
				continue
			}
		}
		out = append(out, n)
	}
	return out
}

// sortNotes orders by creation time (newest by default) or by type, newest
// first within a type.
func sortNotes(notes []model.Note, by string) {
	sort.SliceStable(notes, func(i, j int) bool {
		a, b := notes[i], notes[j]
		switch by {
		case "oldest":
			return a.CreatedAt.Before(b.CreatedAt)
		case "type":
			if a.NoteType != b.NoteType {
				return a.NoteType < b.NoteType
			}
			return a.CreatedAt.After(b.CreatedAt)
		default:
			return a.CreatedAt.After(b.CreatedAt)
		}
	})
}
