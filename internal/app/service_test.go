package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	service "github.com/okian/statusboard/internal/app"
	"github.com/okian/statusboard/internal/domain/dashboard"
	"github.com/okian/statusboard/internal/domain/model"
	"github.com/okian/statusboard/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	// Initialize logging for tests
	err := logger.Init()
	if err != nil {
		panic(err)
	}
}

type recordingFetcher struct {
	mu   sync.Mutex
	urls []string
}

func (f *recordingFetcher) Get(_ context.Context, url string) (json.RawMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.urls = append(f.urls, url)
	return json.RawMessage(`{"status":"healthy"}`), nil
}

func (f *recordingFetcher) URLs() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.urls...)
}

// blockingFetcher ignores its context and returns once release is closed.
type blockingFetcher struct {
	started chan struct{}
	release chan struct{}
	once    sync.Once
}

func newBlockingFetcher() *blockingFetcher {
	return &blockingFetcher{started: make(chan struct{}), release: make(chan struct{})}
}

func (f *blockingFetcher) Get(context.Context, string) (json.RawMessage, error) {
	f.once.Do(func() { close(f.started) })
	<-f.release
	return json.RawMessage(`{"status":"healthy"}`), nil
}

func TestService_New(t *testing.T) {
	Convey("Given a new service with default options", t, func() {
		svc := service.New()

		Convey("Then it should have sensible defaults", func() {
			So(svc, ShouldNotBeNil)
			stats := svc.GetStats()
			So(stats["started"], ShouldEqual, false)
			So(stats["baseURL"], ShouldEqual, "http://localhost:8000")
			So(stats["environment"], ShouldEqual, "development")
			So(stats["requestTimeout"], ShouldEqual, "0s")
			So(stats["mountTTL"], ShouldEqual, "30m0s")
			So(svc.Endpoints(), ShouldResemble, model.DefaultEndpoints())
		})
	})

	Convey("Given a new service with custom options", t, func() {
		svc := service.New(
			service.WithBaseURL("http://backend:8000"),
			service.WithEnvironment("production"),
			service.WithRequestTimeout(5*time.Second),
			service.WithMountTTL(time.Minute),
		)

		Convey("Then the options should be reflected in its stats", func() {
			stats := svc.GetStats()
			So(stats["baseURL"], ShouldEqual, "http://backend:8000")
			So(stats["environment"], ShouldEqual, "production")
			So(stats["requestTimeout"], ShouldEqual, "5s")
			So(stats["mountTTL"], ShouldEqual, "1m0s")
		})
	})
}

func TestService_Start(t *testing.T) {
	Convey("Given a new service", t, func() {
		svc := service.New(service.WithFetcher(&recordingFetcher{}))
		// Ensure service is stopped after test
		defer svc.Stop()

		Convey("When mounting before start", func() {
			_, _, err := svc.Mount(context.Background())

			Convey("Then it should be refused", func() {
				So(errors.Is(err, service.ErrNotStarted), ShouldBeTrue)
			})
		})

		Convey("When starting the service", func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			err := svc.Start(ctx)

			Convey("Then it should start successfully", func() {
				So(err, ShouldBeNil)
			})

			Convey("And it should be marked as started", func() {
				stats := svc.GetStats()
				So(stats["started"], ShouldEqual, true)
				So(stats["mounts"], ShouldEqual, 0)
			})

			Convey("And starting again should be a no-op", func() {
				So(svc.Start(ctx), ShouldBeNil)
			})
		})
	})
}

func TestService_Mount(t *testing.T) {
	Convey("Given a started service", t, func() {
		f := &recordingFetcher{}
		svc := service.New(
			service.WithFetcher(f),
			service.WithBaseURL("http://backend:8000"),
		)
		So(svc.Start(context.Background()), ShouldBeNil)
		defer svc.Stop()

		Convey("When a dashboard is mounted with a short-lived request context", func() {
			reqCtx, cancel := context.WithCancel(context.Background())
			id, d, err := svc.Mount(reqCtx)
			cancel()
			So(err, ShouldBeNil)
			d.Wait()

			Convey("Then it should get an id and fetch health exactly once", func() {
				So(id, ShouldNotBeBlank)
				So(f.URLs(), ShouldResemble, []string{"http://backend:8000/health"})
				So(d.View().Status, ShouldEqual, model.StatusConnected)
			})

			Convey("Then it should outlive the request context", func() {
				So(d.Trigger("/info"), ShouldBeNil)
				d.Wait()
				So(d.View().Status, ShouldEqual, model.StatusConnected)
			})

			Convey("Then it should be found by id", func() {
				got, err := svc.Dashboard(context.Background(), id)
				So(err, ShouldBeNil)
				So(got, ShouldEqual, d)
				So(svc.MountCount(), ShouldEqual, 1)
				So(svc.GetStats()["totalMounts"], ShouldEqual, int64(1))
			})

			Convey("When it is unmounted", func() {
				So(svc.Unmount(context.Background(), id), ShouldBeNil)

				Convey("Then it should be gone and refuse fetches", func() {
					_, err := svc.Dashboard(context.Background(), id)
					So(errors.Is(err, service.ErrMountNotFound), ShouldBeTrue)
					So(errors.Is(d.Trigger("/"), dashboard.ErrUnmounted), ShouldBeTrue)
					So(svc.MountCount(), ShouldEqual, 0)
				})

				Convey("Then unmounting again should report not found", func() {
					So(errors.Is(svc.Unmount(context.Background(), id), service.ErrMountNotFound), ShouldBeTrue)
				})
			})
		})

		Convey("When looking up an unknown id", func() {
			_, err := svc.Dashboard(context.Background(), "nope")

			Convey("Then it should report not found", func() {
				So(errors.Is(err, service.ErrMountNotFound), ShouldBeTrue)
			})
		})

		Convey("When two dashboards are mounted", func() {
			id1, _, err1 := svc.Mount(context.Background())
			id2, _, err2 := svc.Mount(context.Background())

			Convey("Then they should get distinct ids", func() {
				So(err1, ShouldBeNil)
				So(err2, ShouldBeNil)
				So(id1, ShouldNotEqual, id2)
				So(svc.MountCount(), ShouldEqual, 2)
			})
		})
	})
}

func TestService_Stop(t *testing.T) {
	Convey("Given a started service with a mount", t, func() {
		svc := service.New(service.WithFetcher(&recordingFetcher{}))
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		err := svc.Start(ctx)
		So(err, ShouldBeNil)
		_, d, err := svc.Mount(ctx)
		So(err, ShouldBeNil)

		Convey("When stopping the service", func() {
			svc.Stop()

			Convey("Then it should be marked as stopped", func() {
				stats := svc.GetStats()
				So(stats["started"], ShouldEqual, false)
			})

			Convey("And the mount should be unmounted", func() {
				So(errors.Is(d.Trigger("/"), dashboard.ErrUnmounted), ShouldBeTrue)
				So(svc.MountCount(), ShouldEqual, 0)
			})

			Convey("And stopping again should be harmless", func() {
				So(func() { svc.Stop() }, ShouldNotPanic)
			})
		})
	})
}

func TestService_StopWithSlowFetch(t *testing.T) {
	Convey("Given a started service whose mount has a fetch that ignores cancellation", t, func() {
		f := newBlockingFetcher()
		svc := service.New(service.WithFetcher(f))
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		So(svc.Start(ctx), ShouldBeNil)
		_, _, err := svc.Mount(ctx)
		So(err, ShouldBeNil)
		<-f.started

		Convey("When stopping the service", func() {
			stopped := make(chan struct{})
			go func() {
				svc.Stop()
				close(stopped)
			}()
			defer func() {
				close(f.release)
				<-stopped
			}()

			Convey("Then readers should not block while the fetch drains", func() {
				read := make(chan map[string]interface{})
				go func() {
					time.Sleep(50 * time.Millisecond)
					svc.MountCount()
					read <- svc.GetStats()
				}()

				select {
				case stats := <-read:
					So(stats["started"], ShouldEqual, false)
				case <-time.After(2 * time.Second):
					So("stats blocked behind Stop", ShouldBeEmpty)
				}

				select {
				case <-stopped:
					So("Stop returned before the fetch settled", ShouldBeEmpty)
				default:
				}
			})
		})
	})
}
