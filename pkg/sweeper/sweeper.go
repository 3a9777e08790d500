package sweeper

import (
	"context"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"k8s.io/klog/v2"

	"github.com/atelier-lab/atelier/pkg/alert"
	"github.com/atelier-lab/atelier/pkg/assetctl"
	"github.com/atelier-lab/atelier/pkg/constants"
	artistdb "github.com/atelier-lab/atelier/pkg/db/artist"
	chaindb "github.com/atelier-lab/atelier/pkg/db/chain"
	inspirationdb "github.com/atelier-lab/atelier/pkg/db/inspiration"
	sessiondb "github.com/atelier-lab/atelier/pkg/db/session"
	"github.com/atelier-lab/atelier/pkg/objstore"
)

// Report summarizes a single sweep run.
type Report struct {
	StartedAt       time.Time `json:"startedAt"`
	FinishedAt      time.Time `json:"finishedAt"`
	ScannedObjects  int       `json:"scannedObjects"`
	RemovedObjects  int       `json:"removedObjects"`
	FreedBytes      int64     `json:"freedBytes"`
	RemovedSessions int64     `json:"removedSessions"`
}

// Sweeper removes orphaned bucket objects and expired sessions. An
// object is orphaned when no live chain, artist or inspiration row
// references it and it is older than the grace period.
//
// Only the covers, artists and inspirations folders are swept. Keys
// under uploads/ can be referenced from free-form chain configuration
// JSON, so they are never treated as orphans.
type Sweeper struct {
	store        objstore.ObjectStoreInterface
	chains       chaindb.DBService
	artists      artistdb.DBService
	inspirations inspirationdb.DBService
	sessions     sessiondb.DBService
	alerter      alert.AlertInterface
	grace        time.Duration
	now          func() time.Time

	cron      *cron.Cron
	cronMutex sync.RWMutex
	runMutex  sync.Mutex
	last      *Report
}

func NewSweeper(
	store objstore.ObjectStoreInterface,
	chains chaindb.DBService,
	artists artistdb.DBService,
	inspirations inspirationdb.DBService,
	sessions sessiondb.DBService,
	alerter alert.AlertInterface,
	grace time.Duration,
) *Sweeper {
	return &Sweeper{
		store:        store,
		chains:       chains,
		artists:      artists,
		inspirations: inspirations,
		sessions:     sessions,
		alerter:      alerter,
		grace:        grace,
		now:          time.Now,
		cron:         cron.New(cron.WithLocation(time.Local)),
	}
}

// Start registers the sweep on the given cron spec and launches the
// scheduler. An empty spec disables scheduled sweeps; RunOnce stays
// available for manual triggers.
func (s *Sweeper) Start(schedule string) error {
	if schedule == "" {
		klog.Info("Sweeper.Start: no schedule configured, scheduled sweeps disabled")
		return nil
	}
	s.cronMutex.Lock()
	defer s.cronMutex.Unlock()
	_, err := s.cron.AddFunc(schedule, func() {
		if _, runErr := s.RunOnce(context.Background()); runErr != nil {
			klog.Errorf("Sweeper: scheduled sweep failed: %v", runErr)
		}
	})
	if err != nil {
		klog.Error(err)
		return err
	}
	s.cron.Start()
	klog.Infof("Sweeper.Start: scheduler started with spec %q", schedule)
	return nil
}

// Stop stops the cron scheduler. A sweep already in flight finishes.
func (s *Sweeper) Stop() {
	s.cronMutex.Lock()
	defer s.cronMutex.Unlock()
	s.cron.Stop()
}

// LastReport returns the report of the most recent completed sweep,
// or nil when no sweep has run yet.
func (s *Sweeper) LastReport() *Report {
	s.cronMutex.RLock()
	defer s.cronMutex.RUnlock()
	if s.last == nil {
		return nil
	}
	report := *s.last
	return &report
}

// RunOnce performs one full sweep: orphaned objects first, expired
// sessions second. Concurrent calls serialize; the later caller runs
// a fresh sweep after the earlier one finishes.
func (s *Sweeper) RunOnce(ctx context.Context) (*Report, error) {
	s.runMutex.Lock()
	defer s.runMutex.Unlock()

	report := &Report{StartedAt: s.now()}

	referenced, err := s.collectReferencedKeys(ctx)
	if err != nil {
		return nil, err
	}

	prefixes := []string{
		constants.AssetFolderCovers + "/",
		constants.AssetFolderArtists + "/",
		constants.AssetFolderInspirations + "/",
	}
	for _, prefix := range prefixes {
		if err = s.sweepPrefix(ctx, prefix, referenced, report); err != nil {
			return nil, err
		}
	}

	removedSessions, err := s.sessions.DeleteExpired(ctx, s.now())
	if err != nil {
		klog.Errorf("Sweeper: failed to purge expired sessions: %v", err)
	} else {
		report.RemovedSessions = removedSessions
	}

	report.FinishedAt = s.now()
	s.cronMutex.Lock()
	s.last = report
	s.cronMutex.Unlock()

	klog.Infof("Sweeper: removed %d/%d objects (%d bytes) and %d expired sessions",
		report.RemovedObjects, report.ScannedObjects, report.FreedBytes, report.RemovedSessions)
	if alertErr := s.alerter.SweepReport(ctx,
		report.RemovedObjects, report.FreedBytes, report.RemovedSessions); alertErr != nil {
		klog.Errorf("Sweeper: failed to send sweep report: %v", alertErr)
	}
	return report, nil
}

// collectReferencedKeys gathers the managed object keys of every live
// row. External URLs and empty references are ignored.
func (s *Sweeper) collectReferencedKeys(ctx context.Context) (map[string]struct{}, error) {
	refs := make([]string, 0)

	coverRefs, err := s.chains.ListCoverRefs(ctx)
	if err != nil {
		return nil, err
	}
	refs = append(refs, coverRefs...)

	artistRefs, err := s.artists.ListImageRefs(ctx)
	if err != nil {
		return nil, err
	}
	refs = append(refs, artistRefs...)

	inspirationRefs, err := s.inspirations.ListImageRefs(ctx)
	if err != nil {
		return nil, err
	}
	refs = append(refs, inspirationRefs...)

	referenced := make(map[string]struct{}, len(refs))
	for _, raw := range refs {
		if ref := assetctl.ParseRef(raw); ref.Kind == assetctl.RefManaged {
			referenced[ref.Key] = struct{}{}
		}
	}
	return referenced, nil
}

func (s *Sweeper) sweepPrefix(
	ctx context.Context,
	prefix string,
	referenced map[string]struct{},
	report *Report,
) error {
	objects, err := s.store.ListObjects(ctx, prefix)
	if err != nil {
		return err
	}
	cutoff := s.now().Add(-s.grace)
	for i := range objects {
		obj := &objects[i]
		report.ScannedObjects++
		if _, ok := referenced[obj.Key]; ok {
			continue
		}
		// Recent objects may belong to an in-flight mutation whose
		// row has not committed yet.
		if obj.LastModified.After(cutoff) {
			continue
		}
		if err := s.store.DeleteObject(ctx, obj.Key); err != nil {
			klog.Errorf("Sweeper: failed to delete orphan %s: %v", obj.Key, err)
			continue
		}
		report.RemovedObjects++
		report.FreedBytes += obj.Size
	}
	return nil
}
