package memory

import (
	"context"
	"sync"
)

// TxManager последовательно выполняет критические секции бронирования для
// in-memory хранилища. SQL-транзакций здесь нет, поэтому сериализуемость
// цепочки "посчитать подтверждённые - решить статус - вставить запись"
// обеспечивается обычным мьютексом.
type TxManager struct {
	mu sync.Mutex
}

// NewTxManager создает новый менеджер
func NewTxManager() *TxManager {
	return &TxManager{}
}

// Do выполняет fn под блокировкой
func (m *TxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx)
}

// DoSerializable выполняет fn под блокировкой.
// Для in-memory хранилища не отличается от Do.
func (m *TxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.Do(ctx, fn)
}
