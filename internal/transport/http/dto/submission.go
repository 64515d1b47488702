package dto

import (
	"halarcraft/internal/domain/models"

	"github.com/google/uuid"
)

// DraftFields — текстовые поля формы; какие из них обязательны,
// решает валидация по виду работы
type DraftFields struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	World       string `json:"world"`
	Coordinates string `json:"coordinates"`
}

// DraftState — снимок черновика, который видит клиент
type DraftState struct {
	ID   uuid.UUID             `json:"draft_id"`
	Kind models.SubmissionKind `json:"kind"`
	DraftFields
	AssetURL  string `json:"asset_url,omitempty"`
	Uploading bool   `json:"uploading"`
}

type ModerateRequest struct {
	Decision string `json:"decision" validate:"required,oneof=approve reject"`
}

type SessionRequest struct {
	AccessToken string `json:"access_token" validate:"required"`
}

type CodeProgress struct {
	Claimed []string `json:"claimed"`
	Total   int      `json:"total"`
}

type ClaimCodeResult struct {
	Code           models.SecretCode `json:"code"`
	AlreadyClaimed bool              `json:"already_claimed"`
}
