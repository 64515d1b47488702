package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"halarcraft/internal/domain/models"
	"halarcraft/internal/lib/logger/sl"
	"halarcraft/internal/repository"
)

// ErrUnknownCode — код с таким идентификатором сайту не известен
var ErrUnknownCode = errors.New("unknown secret code")

// CodeService ведёт учёт найденных секретных кодов по пользователям.
// Сами коды фиксированы, в Redis хранятся только отметки о находках.
type CodeService struct {
	log    *slog.Logger
	ledger repository.CodeLedger
}

func NewCodeService(log *slog.Logger, ledger repository.CodeLedger) *CodeService {
	return &CodeService{
		log:    log,
		ledger: ledger,
	}
}

// Claim отмечает код найденным и возвращает его содержимое.
// Повторная находка не ошибка: код возвращается с отметкой alreadyClaimed.
func (s *CodeService) Claim(ctx context.Context, userID, codeID string) (*models.SecretCode, bool, error) {
	const op = "code_service.Claim"

	code, ok := models.SecretCodeByID(codeID)
	if !ok {
		return nil, false, ErrUnknownCode
	}

	claimed, err := s.ledger.Claim(ctx, userID, codeID)
	if err != nil {
		s.log.Error("failed to claim code", slog.String("op", op), sl.Err(err))
		return nil, false, fmt.Errorf("%s: %w", op, err)
	}

	if claimed {
		s.log.Info("secret code claimed",
			slog.String("op", op),
			slog.String("user_id", userID),
			slog.String("code_id", codeID))
	}

	return &code, !claimed, nil
}

// Progress возвращает найденные пользователем коды и их общее число
func (s *CodeService) Progress(ctx context.Context, userID string) ([]string, int, error) {
	const op = "code_service.Progress"

	claimed, err := s.ledger.ClaimedCodes(ctx, userID)
	if err != nil {
		s.log.Error("failed to load claimed codes", slog.String("op", op), sl.Err(err))
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	return claimed, len(models.SecretCodes), nil
}
