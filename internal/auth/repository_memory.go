package auth

import "sync"

type InMemoryAdminRepository struct {
	mu     sync.RWMutex
	admins map[string]*Admin
}

func NewInMemoryAdminRepository(admins ...Admin) *InMemoryAdminRepository {
	r := &InMemoryAdminRepository{
		admins: make(map[string]*Admin, len(admins)),
	}
	for _, a := range admins {
		r.Save(a)
	}
	return r
}

func (r *InMemoryAdminRepository) Save(admin Admin) {
	if admin.Role == "" {
		admin.Role = RoleAdmin
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.admins[admin.Username] = &admin
}

func (r *InMemoryAdminRepository) FindByUsername(username string) (*Admin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	admin, ok := r.admins[username]
	if !ok {
		return nil, ErrAdminNotFound
	}
	copied := *admin
	return &copied, nil
}
