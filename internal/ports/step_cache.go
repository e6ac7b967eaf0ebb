package ports

import (
	"context"
	"time"

	"github.com/Gunvolt24/order-precheck/internal/domain"
)

// StepCache — интерфейс кэша результатов шагов валидации.
// Требования к реализации: потокобезопасность; доступ по ключу не хуже O(1);
// ленивое вытеснение просроченных записей при чтении; возврат копий полезной нагрузки.
type StepCache interface {
	// Get — вернуть результат по ключу; (result, true) при попадании,
	// (zero, false) при промахе или истечении срока жизни.
	// Чтение не продлевает срок жизни записи.
	Get(ctx context.Context, key string) (domain.StepResult, bool)

	// Set — сохранить/обновить результат с индивидуальным TTL.
	// ttl <= 0 означает TTL по умолчанию, заданный реализацией.
	Set(ctx context.Context, key string, res domain.StepResult, ttl time.Duration) error

	// Has — true, если запись существует и не просрочена.
	Has(ctx context.Context, key string) bool

	// Delete — удалить одну запись; отсутствие записи не считается ошибкой.
	Delete(ctx context.Context, key string) error

	// Clear — удалить все записи.
	Clear(ctx context.Context) error
}
