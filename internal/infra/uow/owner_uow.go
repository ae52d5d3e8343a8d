package uow

import (
	"context"
	"sync"

	"rebate-ledger/internal/usecase/shared"

	"github.com/google/uuid"
)

type ownerLock struct {
	mu   sync.RWMutex
	refs int
}

// OwnerUoW hands out per-owner locks so a read-modify-write of one owner's
// lists never interleaves with another request for the same owner.
type OwnerUoW struct {
	tx *listTx

	mu    sync.Mutex
	locks map[uuid.UUID]*ownerLock
}

func NewOwnerUoW(entries shared.EntryRepository, redemptions shared.RedemptionRepository, bundles shared.BundleRepository) shared.UnitOfWork {
	return &OwnerUoW{
		tx:    &listTx{entries: entries, redemptions: redemptions, bundles: bundles},
		locks: make(map[uuid.UUID]*ownerLock),
	}
}

func (u *OwnerUoW) Within(ctx context.Context, owner uuid.UUID, fn func(ctx context.Context, tx shared.Tx) error) error {
	l := u.acquire(owner)
	defer u.release(owner, l)

	l.mu.Lock()
	defer l.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(ctx, u.tx)
}

func (u *OwnerUoW) WithinReadOnly(ctx context.Context, owner uuid.UUID, fn func(ctx context.Context, tx shared.Tx) error) error {
	l := u.acquire(owner)
	defer u.release(owner, l)

	l.mu.RLock()
	defer l.mu.RUnlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(ctx, u.tx)
}

func (u *OwnerUoW) acquire(owner uuid.UUID) *ownerLock {
	u.mu.Lock()
	defer u.mu.Unlock()

	l, ok := u.locks[owner]
	if !ok {
		l = &ownerLock{}
		u.locks[owner] = l
	}
	l.refs++
	return l
}

// release drops the lock entry once no caller holds or waits on it.
func (u *OwnerUoW) release(owner uuid.UUID, l *ownerLock) {
	u.mu.Lock()
	defer u.mu.Unlock()

	l.refs--
	if l.refs == 0 {
		delete(u.locks, owner)
	}
}

type listTx struct {
	entries     shared.EntryRepository
	redemptions shared.RedemptionRepository
	bundles     shared.BundleRepository
}

func (t *listTx) Entries() shared.EntryRepository         { return t.entries }
func (t *listTx) Redemptions() shared.RedemptionRepository { return t.redemptions }
func (t *listTx) Bundles() shared.BundleRepository         { return t.bundles }
