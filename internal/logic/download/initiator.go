package download

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/MirrorChyan/macdl/internal/config"
	"github.com/MirrorChyan/macdl/internal/logic/dispense"
	"github.com/MirrorChyan/macdl/internal/logic/resolver"
	"github.com/MirrorChyan/macdl/internal/metrics"
	"github.com/MirrorChyan/macdl/internal/pkg/errs"
	"github.com/MirrorChyan/macdl/internal/pkg/ticker"
	"github.com/segmentio/ksuid"
	"go.uber.org/zap"
)

const maxProgress = 100.0

type VersionSource interface {
	Refresh(ctx context.Context) resolver.Outcome
}

type Options struct {
	TickInterval          time.Duration
	ProgressStep          float64
	ResetDelay            time.Duration
	RefreshBeforeDownload bool

	// Rand returns values in [0, 1). Nil uses math/rand.
	Rand func() float64
}

// Sequence is one accepted download invocation.
type Sequence struct {
	ID  string
	URL string

	// Err is set when the URL could not be built or opened. It is valid once
	// Initiate has returned.
	Err error

	task  *ticker.Task
	timer *time.Timer
	done  chan struct{}
}

// Done is closed when the sequence has been reset and the initiator accepts a new call.
func (s *Sequence) Done() <-chan struct{} {
	return s.done
}

// Initiator drives one download surface. At most one sequence is live at a time;
// it owns the surface until its reset fires.
type Initiator struct {
	logger  *zap.Logger
	source  VersionSource
	builder *dispense.URLBuilder
	opener  Opener
	opts    Options

	mu       sync.Mutex
	seq      *Sequence
	phase    Phase
	ticks    int
	progress float64
	message  string

	onChange func(Snapshot)
	onError  func(string)
}

func NewInitiator(
	conf *config.Config,
	logger *zap.Logger,
	source *resolver.VersionResolver,
	builder *dispense.URLBuilder,
	opener Opener,
) *Initiator {
	return New(logger, source, builder, opener, Options{
		TickInterval:          conf.Download.TickInterval,
		ProgressStep:          conf.Download.ProgressStep,
		ResetDelay:            conf.Download.ResetDelay,
		RefreshBeforeDownload: conf.Download.RefreshBeforeDownload,
	})
}

func New(logger *zap.Logger, source VersionSource, builder *dispense.URLBuilder, opener Opener, opts Options) *Initiator {
	if opts.Rand == nil {
		opts.Rand = rand.Float64
	}
	if opts.TickInterval <= 0 {
		opts.TickInterval = config.DefaultTickInterval
	}
	return &Initiator{
		logger:  logger,
		source:  source,
		builder: builder,
		opener:  opener,
		opts:    opts,
	}
}

// OnChange registers the state observer. It runs with the initiator locked
// and must not call back into it.
func (i *Initiator) OnChange(fn func(Snapshot)) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.onChange = fn
}

// OnError registers the sink for user-facing failure messages.
func (i *Initiator) OnError(fn func(string)) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.onError = fn
}

func (i *Initiator) Snapshot() Snapshot {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.snapshotLocked()
}

// Initiate starts a download of version. It returns nil without side effects
// when version is empty or another sequence is still live.
func (i *Initiator) Initiate(ctx context.Context, version string) *Sequence {
	i.mu.Lock()
	if version == "" || i.seq != nil {
		i.mu.Unlock()
		metrics.DownloadInitiatedTotal.WithLabelValues("rejected").Inc()
		return nil
	}

	seq := &Sequence{
		ID:   ksuid.New().String(),
		done: make(chan struct{}),
	}
	i.seq = seq
	i.phase = InProgress
	i.ticks = 0
	i.progress = 0
	i.message = ""
	seq.task = ticker.Repeat(i.opts.TickInterval, func() bool {
		return i.tick(seq)
	})
	seq.timer = time.AfterFunc(i.opts.ResetDelay, func() {
		i.reset(seq)
	})
	i.notifyLocked()
	i.mu.Unlock()

	url, err := i.prepare(ctx, seq, version)
	if err == nil {
		err = i.opener.Open(url)
	}
	if err != nil {
		i.logger.Error("Failed to initiate download",
			zap.String("sequence", seq.ID),
			zap.String("version", version),
			zap.Error(err),
		)
		metrics.DownloadInitiatedTotal.WithLabelValues("failed").Inc()
		seq.Err = errs.ErrDownloadInitiation.Wrap(err)
		i.fail(seq)
		return seq
	}

	i.logger.Info("Opened download url",
		zap.String("sequence", seq.ID),
		zap.String("url", url),
	)
	metrics.DownloadInitiatedTotal.WithLabelValues("opened").Inc()
	seq.URL = url
	return seq
}

// Close resets any live sequence. Call it when the owning surface goes away.
func (i *Initiator) Close() {
	i.mu.Lock()
	seq := i.seq
	i.mu.Unlock()
	if seq != nil {
		i.reset(seq)
	}
}

func (i *Initiator) prepare(ctx context.Context, seq *Sequence, version string) (string, error) {
	if i.opts.RefreshBeforeDownload {
		o := i.source.Refresh(ctx)
		if o.IsResolved() && o.Version != version {
			i.logger.Info("Using fresher version",
				zap.String("sequence", seq.ID),
				zap.String("requested", version),
				zap.String("resolved", o.Version),
			)
			version = o.Version
		}
	}
	return i.builder.Build(version)
}

func (i *Initiator) tick(seq *Sequence) bool {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.seq != seq || i.phase != InProgress {
		return false
	}

	i.ticks++
	i.progress += i.opts.Rand() * i.opts.ProgressStep
	if i.progress >= maxProgress {
		i.progress = maxProgress
		i.phase = Done
	}
	i.notifyLocked()
	return i.phase == InProgress
}

// fail reports the failure of seq to the error sink. The sink is called even
// when the reset timer already retired seq; only the state reset is skipped then.
func (i *Initiator) fail(seq *Sequence) {
	i.mu.Lock()
	live := i.seq == seq
	if live {
		i.message = errs.DownloadInitiationMessage
		i.notifyLocked()
	}
	sink := i.onError
	i.mu.Unlock()

	if sink != nil {
		sink(errs.DownloadInitiationMessage)
	}
	if live {
		i.reset(seq)
	}
}

func (i *Initiator) reset(seq *Sequence) {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.seq != seq {
		return
	}
	seq.task.Stop()
	seq.timer.Stop()

	i.seq = nil
	i.phase = Idle
	i.ticks = 0
	i.progress = 0
	i.notifyLocked()
	close(seq.done)
}

func (i *Initiator) snapshotLocked() Snapshot {
	return Snapshot{
		Phase:       i.phase,
		Ticks:       i.ticks,
		Progress:    i.progress,
		Downloading: i.seq != nil,
		Message:     i.message,
	}
}

func (i *Initiator) notifyLocked() {
	if i.onChange != nil {
		i.onChange(i.snapshotLocked())
	}
}
