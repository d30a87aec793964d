package validation

import "sync"

// registry это единственный разделяемый ресурс координатора: множество заказов,
// по которым валидация уже запущена. Принадлежит экземпляру, не процессу.
type registry struct {
	mu  sync.Mutex
	ids map[int64]struct{}
}

func newRegistry() *registry {
	return &registry{
		ids: make(map[int64]struct{}),
	}
}

// tryAdd атомарно выполняет проверку и регистрацию.
func (r *registry) tryAdd(id int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.ids[id]; ok {
		return false
	}
	r.ids[id] = struct{}{}
	return true
}

func (r *registry) remove(id int64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.ids, id)
}

func (r *registry) contains(id int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.ids[id]
	return ok
}
