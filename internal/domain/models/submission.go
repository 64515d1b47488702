package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type SubmissionKind string

type SubmissionStatus string

const (
	SubmissionKindShowcase SubmissionKind = "showcase"
	SubmissionKindGallery  SubmissionKind = "gallery"
)

const (
	StatusPending  SubmissionStatus = "pending"
	StatusApproved SubmissionStatus = "approved"
	StatusRejected SubmissionStatus = "rejected"
)

// Словари формы на сайте: категории для showcase, миры для галереи
var (
	ShowcaseCategories = []string{"construccion", "redstone", "pvp", "exploracion", "otro"}
	GalleryWorlds      = []string{"survival", "nether", "end", "creative", "otro"}
)

// Submission представляет работу игрока (showcase или скриншот галереи).
// После создания меняются только Status и Likes, остальные поля неизменяемы.
type Submission struct {
	ID          uuid.UUID        `json:"id" db:"id"`
	Seq         int64            `json:"-" db:"seq"`
	Kind        SubmissionKind   `json:"kind" db:"kind"`
	AuthorID    string           `json:"author_id" db:"author_id"`
	AuthorName  string           `json:"author_name" db:"author_name"`
	CreatedAt   time.Time        `json:"created_at" db:"created_at"`
	Status      SubmissionStatus `json:"status" db:"status"`
	AssetURL    string           `json:"asset_url" db:"asset_url"`
	Title       string           `json:"title,omitempty" db:"title"`
	Description string           `json:"description,omitempty" db:"description"`
	Category    string           `json:"category,omitempty" db:"category"`
	World       string           `json:"world,omitempty" db:"world"`
	Coordinates string           `json:"coordinates,omitempty" db:"coordinates"`
	Likes       int              `json:"likes" db:"likes"`
}

func ParseSubmissionKind(s string) (SubmissionKind, error) {
	switch SubmissionKind(s) {
	case SubmissionKindShowcase, SubmissionKindGallery:
		return SubmissionKind(s), nil
	}
	return "", fmt.Errorf("unknown submission kind %q", s)
}

// IsTerminal сообщает, что статус финальный и больше не меняется
func (s SubmissionStatus) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// Validate проверяет обязательные поля работы в зависимости от её вида.
// Возвращает все нарушения сразу, чтобы форма могла подсветить каждое поле.
func (s *Submission) Validate() error {
	var violations []FieldViolation

	if s.AssetURL == "" {
		violations = append(violations, FieldViolation{
			Field:  "asset_url",
			Reason: "image upload must be completed",
		})
	}

	switch s.Kind {
	case SubmissionKindShowcase:
		if strings.TrimSpace(s.Title) == "" {
			violations = append(violations, FieldViolation{Field: "title", Reason: "title is required"})
		}
		if strings.TrimSpace(s.Description) == "" {
			violations = append(violations, FieldViolation{Field: "description", Reason: "description is required"})
		}
		if !contains(ShowcaseCategories, s.Category) {
			violations = append(violations, FieldViolation{
				Field:  "category",
				Reason: fmt.Sprintf("category must be one of: %v", ShowcaseCategories),
			})
		}
	case SubmissionKindGallery:
		if !contains(GalleryWorlds, s.World) {
			violations = append(violations, FieldViolation{
				Field:  "world",
				Reason: fmt.Sprintf("world must be one of: %v", GalleryWorlds),
			})
		}
	default:
		violations = append(violations, FieldViolation{
			Field:  "kind",
			Reason: fmt.Sprintf("unknown submission kind %q", s.Kind),
		})
	}

	if len(violations) > 0 {
		return &ValidationError{Violations: violations}
	}

	return nil
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

// FieldViolation описывает одно нарушенное поле формы
type FieldViolation struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError собирает все нарушения валидации одной ошибкой
type ValidationError struct {
	Violations []FieldViolation `json:"violations"`
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		fields = append(fields, v.Field)
	}
	return fmt.Sprintf("submission validation failed: %s", strings.Join(fields, ", "))
}

// Fields возвращает список нарушенных полей
func (e *ValidationError) Fields() []string {
	fields := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		fields = append(fields, v.Field)
	}
	return fields
}

// IsValidationError проверяет, является ли ошибка ошибкой валидации
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// StatusTransitionError возвращается при попытке модерировать запись,
// которая уже не находится в статусе pending
type StatusTransitionError struct {
	ID   uuid.UUID
	From SubmissionStatus
	To   SubmissionStatus
}

func (e *StatusTransitionError) Error() string {
	return fmt.Sprintf("submission %s: cannot transition %s -> %s", e.ID, e.From, e.To)
}
