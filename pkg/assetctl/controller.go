// Package assetctl orchestrates the lifecycle of image assets: inline
// payloads are decoded, checked against the owner's storage quota,
// written to the bucket and accounted, and objects whose reference was
// replaced or deleted are reclaimed after the record commits.
package assetctl

import (
	"bytes"
	"context"
	"errors"
	"io"

	"github.com/atelier-lab/atelier/dao/model"
	"github.com/atelier-lab/atelier/pkg/alert"
	"github.com/atelier-lab/atelier/pkg/authz"
	"github.com/atelier-lab/atelier/pkg/db/user"
	"github.com/atelier-lab/atelier/pkg/logutils"
	"github.com/atelier-lab/atelier/pkg/objstore"
)

// ErrQuotaExceeded is returned when an upload would push the owner past
// the storage ceiling. Nothing is written and no counter changes.
var ErrQuotaExceeded = errors.New("storage quota exceeded")

// QuotaPolicy is the admission configuration of the controller.
type QuotaPolicy struct {
	// LimitBytes is the per-user ceiling. Admins are exempt.
	LimitBytes int64
	// ReclaimCredit controls the counter semantics: when true a
	// successful reclaim credits the object size back to the owner,
	// when false usage only ever grows.
	ReclaimCredit bool
}

type Controller struct {
	store  objstore.ObjectStoreInterface
	userDB user.DBService
	alert  alert.AlertInterface
	quota  QuotaPolicy
}

func NewController(store objstore.ObjectStoreInterface, userDB user.DBService,
	alerter alert.AlertInterface, quota QuotaPolicy) *Controller {
	return &Controller{
		store:  store,
		userDB: userDB,
		alert:  alerter,
		quota:  quota,
	}
}

// Staged is the outcome of preparing one incoming asset value. For an
// inline image Key and Size describe the freshly written object; values
// passed through unchanged only carry Ref.
type Staged struct {
	Ref     string
	Key     string
	Size    int64
	ownerID uint
}

// Uploaded reports whether preparing wrote a new object.
func (s *Staged) Uploaded() bool { return s.Key != "" }

// PrepareRef stages an incoming asset value on behalf of the actor.
// External URLs, already managed paths and empty values pass through
// unchanged. Inline images are decoded, admitted against the quota,
// written under a fresh key in folder and accounted to the actor.
// After committing the record the caller finishes with ReclaimReplaced,
// or undoes a failed commit with Unstage.
func (c *Controller) PrepareRef(ctx context.Context, actor authz.Actor,
	folder string, entityID uint, value string) (*Staged, error) {
	ref := ParseRef(value)
	if ref.Kind != RefInline {
		return &Staged{Ref: value}, nil
	}

	data, ext, err := objstore.DecodeDataURI(value)
	if err != nil {
		return nil, err
	}
	contentType := objstore.ContentTypeForExt(ext)
	return c.stage(ctx, actor, folder, entityID, ext, bytes.NewReader(data), int64(len(data)), contentType)
}

// StageUpload streams a standalone uploaded file into the bucket under
// folder, enforcing the actor's quota the same way inline images are.
func (c *Controller) StageUpload(ctx context.Context, actor authz.Actor,
	folder, filename string, body io.Reader, size int64, contentType string) (*Staged, error) {
	ext := objstore.ExtFromFilename(filename)
	if contentType == "" {
		contentType = objstore.ContentTypeForExt(ext)
	}
	return c.stage(ctx, actor, folder, actor.UserID, ext, body, size, contentType)
}

// stage admits, writes and accounts one object. The sequence is pinned:
// the admission pre-check rejects before any bytes move, the conditional
// counter update after the put is the authoritative gate under
// concurrency, and a put whose accounting fails is deleted again.
func (c *Controller) stage(ctx context.Context, actor authz.Actor,
	folder string, keyID uint, ext string, body io.Reader, size int64, contentType string) (*Staged, error) {
	admin := actor.Role == model.RoleAdmin
	if !admin {
		current, err := c.userDB.GetByID(ctx, actor.UserID)
		if err != nil {
			return nil, err
		}
		if current.StorageUsage+size > c.quota.LimitBytes {
			quotaRejectedTotal.Inc()
			if current.StorageUsage >= c.quota.LimitBytes {
				// The account is completely full, tell the operators.
				if alertErr := c.alert.QuotaExhausted(ctx, current.Name, current.StorageUsage, c.quota.LimitBytes); alertErr != nil {
					logutils.Log.Errorf("send quota alert failed: %v", alertErr)
				}
			}
			return nil, ErrQuotaExceeded
		}
	}

	key := objstore.BuildKey(folder, keyID, ext)
	if err := c.store.PutObject(ctx, key, body, size, contentType); err != nil {
		return nil, err
	}

	if err := c.consume(ctx, actor, size); err != nil {
		// The object is already in the bucket, remove it again so a
		// rejected upload leaves neither bytes nor counter changes.
		if delErr := c.store.DeleteObject(ctx, key); delErr != nil {
			c.reportReclaimFailure(ctx, key, delErr)
		}
		return nil, err
	}

	uploadsTotal.WithLabelValues(folder).Inc()
	return &Staged{
		Ref:     ManagedRef(key),
		Key:     key,
		Size:    size,
		ownerID: actor.UserID,
	}, nil
}

// consume adds size bytes to the actor's usage. Non-admins go through
// the conditional single statement update, so two concurrent uploads can
// never jointly pass on a stale counter.
func (c *Controller) consume(ctx context.Context, actor authz.Actor, size int64) error {
	if actor.Role == model.RoleAdmin {
		return c.userDB.AddStorageUsage(ctx, actor.UserID, size)
	}
	ok, err := c.userDB.TryAddStorageUsage(ctx, actor.UserID, size, c.quota.LimitBytes)
	if err != nil {
		return err
	}
	if !ok {
		quotaRejectedTotal.Inc()
		return ErrQuotaExceeded
	}
	return nil
}

// Unstage undoes a prepared upload after the resource commit failed: the
// fresh object is deleted and its size credited back, so the aborted
// mutation leaves no trace.
func (c *Controller) Unstage(ctx context.Context, staged *Staged) {
	if staged == nil || !staged.Uploaded() {
		return
	}
	if err := c.store.DeleteObject(ctx, staged.Key); err != nil {
		c.reportReclaimFailure(ctx, staged.Key, err)
	}
	if err := c.userDB.AddStorageUsage(ctx, staged.ownerID, -staged.Size); err != nil {
		logutils.Log.Errorf("undo usage of %d bytes for user %d failed: %v", staged.Size, staged.ownerID, err)
	}
}

// ReclaimReplaced removes the previous object after a replace committed.
// Equal references mean the field did not change and nothing happens.
func (c *Controller) ReclaimReplaced(ctx context.Context, ownerID uint, oldRef, newRef string) {
	if oldRef == newRef {
		return
	}
	c.ReclaimRef(ctx, ownerID, oldRef)
}

// ReclaimRefs removes every managed object referenced by a deleted
// resource.
func (c *Controller) ReclaimRefs(ctx context.Context, ownerID uint, refs ...string) {
	for _, ref := range refs {
		c.ReclaimRef(ctx, ownerID, ref)
	}
}

// ReclaimRef removes the bucket object behind a reference that is no
// longer stored anywhere. External URLs and empty values are ignored,
// reclaiming an absent key is a no-op. Failures are logged and alerted
// but never returned: the caller's mutation has already committed.
func (c *Controller) ReclaimRef(ctx context.Context, ownerID uint, refValue string) {
	ref := ParseRef(refValue)
	if ref.Kind != RefManaged {
		return
	}

	var size int64
	if c.quota.ReclaimCredit {
		info, err := c.store.StatObject(ctx, ref.Key)
		switch {
		case err == nil:
			size = info.Size
		case errors.Is(err, objstore.ErrObjectNotFound):
			// Nothing stored, nothing to credit.
		default:
			c.reportReclaimFailure(ctx, ref.Key, err)
			return
		}
	}

	if err := c.store.DeleteObject(ctx, ref.Key); err != nil {
		c.reportReclaimFailure(ctx, ref.Key, err)
		return
	}
	reclaimsTotal.Inc()

	if c.quota.ReclaimCredit && size > 0 {
		if err := c.userDB.AddStorageUsage(ctx, ownerID, -size); err != nil {
			logutils.Log.Errorf("credit %d bytes to user %d failed: %v", size, ownerID, err)
		}
	}
}

func (c *Controller) reportReclaimFailure(ctx context.Context, key string, reason error) {
	reclaimFailuresTotal.Inc()
	logutils.Log.Errorf("reclaim of %s failed: %v", key, reason)
	if err := c.alert.ReclaimFailed(ctx, key, reason); err != nil {
		logutils.Log.Errorf("send reclaim alert failed: %v", err)
	}
}
