package config

import (
	"log"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
)

// Reloader turns changed-file notifications into parsed, validated configurations.
// Parsing runs on a worker pool; results are handed to the frame loop, which applies them
// on the main thread by calling Poll once per frame. Files that fail to load are logged
// and skipped, so the active configuration stays in effect.
type Reloader struct {
	source  <-chan string
	pool    worker.DynamicWorkerPool
	updates chan *Config
	closeCh chan struct{}
	wg      sync.WaitGroup
	once    sync.Once

	mu     sync.Mutex
	nextID int
	closer func() error
}

// ReloaderOption is a functional option for configuring a Reloader.
type ReloaderOption func(*reloaderSettings)

type reloaderSettings struct {
	workers int
	queue   int
	idle    time.Duration
}

// WithWorkers sets the number of parse workers.
//
// Parameters:
//   - n: worker count
//
// Returns:
//   - ReloaderOption: option function to apply
func WithWorkers(n int) ReloaderOption {
	return func(s *reloaderSettings) {
		s.workers = n
	}
}

// NewReloader starts a reloader reading file paths from source until source closes or
// Close is called.
//
// Parameters:
//   - source: channel of changed config file paths (typically Watcher.Events)
//   - options: functional options to configure the reloader
//
// Returns:
//   - *Reloader: the running reloader
func NewReloader(source <-chan string, options ...ReloaderOption) *Reloader {
	settings := reloaderSettings{workers: 1, queue: 16, idle: time.Second}
	for _, opt := range options {
		opt(&settings)
	}

	r := &Reloader{
		source:  source,
		pool:    worker.NewDynamicWorkerPool(settings.workers, settings.queue, settings.idle),
		updates: make(chan *Config, 4),
		closeCh: make(chan struct{}),
	}
	r.wg.Add(1)
	go r.run()
	return r
}

// WatchFile starts a Watcher on path and a Reloader fed by it. Closing the reloader also
// closes the watcher.
//
// Parameters:
//   - path: config file to follow
//   - options: functional options to configure the reloader
//
// Returns:
//   - *Reloader: the running reloader
//   - error: if the watcher cannot be started
func WatchFile(path string, options ...ReloaderOption) (*Reloader, error) {
	w, err := NewWatcher(path)
	if err != nil {
		return nil, err
	}
	go func() {
		for err := range w.Errors {
			log.Printf("[Config] watch error: %v", err)
		}
	}()
	r := NewReloader(w.Events, options...)
	r.closer = w.Close
	return r, nil
}

// Updates exposes the channel parsed configurations arrive on.
func (r *Reloader) Updates() <-chan *Config {
	return r.updates
}

// Poll returns the most recent configuration parsed since the last call, or nil.
// It never blocks.
//
// Returns:
//   - *Config: the newest reloaded configuration, nil when none arrived
func (r *Reloader) Poll() *Config {
	var latest *Config
	for {
		select {
		case cfg := <-r.updates:
			latest = cfg
		default:
			return latest
		}
	}
}

// Close stops accepting notifications and closes the underlying watcher, if any.
func (r *Reloader) Close() error {
	var err error
	r.once.Do(func() {
		close(r.closeCh)
		if r.closer != nil {
			err = r.closer()
		}
		r.wg.Wait()
	})
	return err
}

func (r *Reloader) run() {
	defer r.wg.Done()
	for {
		select {
		case path, ok := <-r.source:
			if !ok {
				return
			}
			r.submit(path)
		case <-r.closeCh:
			return
		}
	}
}

func (r *Reloader) submit(path string) {
	r.mu.Lock()
	id := r.nextID
	r.nextID++
	r.mu.Unlock()

	r.pool.SubmitTask(worker.Task{
		ID: id,
		Do: func() (any, error) {
			cfg, err := Load(path)
			if err != nil {
				log.Printf("[Config] reload %s failed, keeping current config: %v", path, err)
				return nil, err
			}
			select {
			case r.updates <- cfg:
				log.Printf("[Config] reloaded %s", path)
			case <-r.closeCh:
			}
			return cfg, nil
		},
	})
}
