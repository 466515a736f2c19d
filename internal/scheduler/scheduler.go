package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/go-co-op/gocron"
	"golang.org/x/sync/errgroup"

	"github.com/i474232898/weather-city-lookup/internal/weather"
)

// maxConcurrentSeeds bounds the lookups in flight while seeding presets.
const maxConcurrentSeeds = 4

// Scheduler seeds preset cities at startup and optionally clears the saved
// cities on a fixed interval.
type Scheduler struct {
	scheduler     *gocron.Scheduler
	service       *weather.Service
	presets       []string
	resetInterval time.Duration
	seedTimeout   time.Duration
}

// New creates a new Scheduler. A zero resetInterval disables the reset job.
func New(presets []string, resetInterval time.Duration, service *weather.Service) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	return &Scheduler{
		scheduler:     s,
		service:       service,
		presets:       presets,
		resetInterval: resetInterval,
		seedTimeout:   30 * time.Second,
	}
}

// Start schedules the jobs and starts the underlying scheduler.
func (s *Scheduler) Start() error {
	if len(s.presets) == 0 && s.resetInterval <= 0 {
		log.Println("scheduler: no preset cities or reset interval configured; nothing to schedule")
		return nil
	}

	if len(s.presets) > 0 {
		_, err := s.scheduler.Every(1).Day().LimitRunsTo(1).Do(func() {
			ctx, cancel := context.WithTimeout(context.Background(), s.seedTimeout)
			defer cancel()
			s.Seed(ctx)
		})
		if err != nil {
			return err
		}
	}

	if s.resetInterval > 0 {
		_, err := s.scheduler.Every(s.resetInterval).WaitForSchedule().Do(func() {
			log.Println("scheduler: clearing saved cities")
			s.service.ClearCities()
		})
		if err != nil {
			return err
		}
	}

	s.scheduler.StartAsync()
	return nil
}

// Seed looks up every preset city concurrently and saves the successful
// results in the configured order. It returns the number of cities looked up
// successfully.
func (s *Scheduler) Seed(ctx context.Context) int {
	log.Printf("scheduler: seeding %d preset cities", len(s.presets))

	results := make([]*weather.WeatherRecord, len(s.presets))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentSeeds)
	for i, city := range s.presets {
		g.Go(func() error {
			record, err := s.service.Lookup(ctx, city)
			if err != nil {
				log.Printf("scheduler: preset %q skipped: %v", city, err)
				return nil
			}
			results[i] = &record
			return nil
		})
	}
	_ = g.Wait()

	seeded := 0
	for _, r := range results {
		if r == nil {
			continue
		}
		s.service.Save(*r)
		seeded++
	}
	log.Printf("scheduler: seeded %d of %d preset cities", seeded, len(s.presets))
	return seeded
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
