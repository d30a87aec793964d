package validation

// GoroutineExecutor запускает задачу в отдельной горутине и не ждет её завершения.
// Восстановление после паники остается на вызываемой функции.
type GoroutineExecutor struct{}

func NewGoroutineExecutor() *GoroutineExecutor {
	return &GoroutineExecutor{}
}

func (e *GoroutineExecutor) Execute(fn func()) {
	go fn()
}
