package booking

import (
	"github.com/m04kA/SMC-SchedulingService/pkg/dbmetrics"
)

// Переиспользуем интерфейс из dbmetrics для работы с БД.
// Подходит *dbmetrics.DB, транзакция берётся из контекста.
type DBExecutor = dbmetrics.DBExecutor
