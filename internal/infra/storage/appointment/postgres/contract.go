package postgres

import "github.com/m04kA/RTC-AppointmentService/pkg/txmanager"

// DBExecutor интерфейс для выполнения запросов.
// Поддерживает *sql.DB и *sql.Tx (через txmanager.GetExecutor).
type DBExecutor = txmanager.TxExecutor
