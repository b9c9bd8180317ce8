package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/dalemusser/startupbridge/internal/domain/models"
	"golang.org/x/crypto/bcrypt"
)

// IdentityProvider checks admin credentials. It reports only success or
// failure; an unknown email and a wrong password look the same.
type IdentityProvider interface {
	Verify(ctx context.Context, email, password string) (models.Admin, bool)
}

// Account is one allow-listed admin with a bcrypt password hash.
type Account struct {
	Admin        models.Admin
	PasswordHash []byte
}

var (
	ErrEmptyEmail     = errors.New("admin account: email is required")
	ErrEmptyHash      = errors.New("admin account: password hash is required")
	ErrDuplicateEmail = errors.New("admin account: duplicate email")
	ErrUnknownRole    = errors.New("admin account: unknown role")
)

// StaticProvider verifies against a fixed allow-list.
type StaticProvider struct {
	accounts map[string]Account
}

// NewStaticProvider validates accounts and indexes them by email.
func NewStaticProvider(accounts ...Account) (*StaticProvider, error) {
	p := &StaticProvider{accounts: make(map[string]Account, len(accounts))}
	for _, a := range accounts {
		if a.Admin.Email == "" {
			return nil, ErrEmptyEmail
		}
		if len(a.PasswordHash) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrEmptyHash, a.Admin.Email)
		}
		if _, ok := p.accounts[a.Admin.Email]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateEmail, a.Admin.Email)
		}
		p.accounts[a.Admin.Email] = a
	}
	return p, nil
}

// Len returns the number of allow-listed accounts.
func (p *StaticProvider) Len() int { return len(p.accounts) }

// Verify matches email exactly and compares the password with bcrypt.
// Unknown emails still pay for one comparison so response time does not
// reveal which addresses exist.
func (p *StaticProvider) Verify(ctx context.Context, email, password string) (models.Admin, bool) {
	if ctx.Err() != nil {
		return models.Admin{}, false
	}
	a, ok := p.accounts[email]
	if !ok {
		_ = bcrypt.CompareHashAndPassword(decoyHash(), []byte(password))
		return models.Admin{}, false
	}
	if err := bcrypt.CompareHashAndPassword(a.PasswordHash, []byte(password)); err != nil {
		return models.Admin{}, false
	}
	return a.Admin, true
}

var (
	decoyOnce sync.Once
	decoy     []byte
)

func decoyHash() []byte {
	decoyOnce.Do(func() {
		decoy, _ = bcrypt.GenerateFromPassword([]byte("startupbridge-decoy"), bcrypt.MinCost)
	})
	return decoy
}

// HashAccount builds an Account from a plaintext password. Used for
// development seeding and tests.
func HashAccount(id int, email, password, name, role string, cost int) (Account, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return Account{}, fmt.Errorf("hash password for %s: %w", email, err)
	}
	return Account{
		Admin:        models.Admin{ID: id, Email: email, Name: name, Role: role},
		PasswordHash: hash,
	}, nil
}

// ParseAccounts reads the admin_accounts setting:
//
//	email|bcrypt-hash|name|role;email|bcrypt-hash|name|role
//
// IDs are assigned in order starting at 1. Blank entries are skipped.
func ParseAccounts(setting string) ([]Account, error) {
	var out []Account
	for _, entry := range strings.Split(setting, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		parts := strings.Split(entry, "|")
		if len(parts) != 4 {
			return nil, fmt.Errorf("admin account %q: want email|hash|name|role", entry)
		}
		email := strings.TrimSpace(parts[0])
		hash := strings.TrimSpace(parts[1])
		name := strings.TrimSpace(parts[2])
		role := strings.TrimSpace(parts[3])
		if email == "" {
			return nil, ErrEmptyEmail
		}
		if hash == "" {
			return nil, fmt.Errorf("%w: %s", ErrEmptyHash, email)
		}
		if _, err := bcrypt.Cost([]byte(hash)); err != nil {
			return nil, fmt.Errorf("admin account %s: %w", email, err)
		}
		if role != models.RoleAdmin && role != models.RoleSuperAdmin {
			return nil, fmt.Errorf("%w: %s (%s)", ErrUnknownRole, role, email)
		}
		out = append(out, Account{
			Admin:        models.Admin{ID: len(out) + 1, Email: email, Name: name, Role: role},
			PasswordHash: []byte(hash),
		})
	}
	return out, nil
}
