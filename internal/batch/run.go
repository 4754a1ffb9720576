package batch

import (
	"sync"
	"sync/atomic"

	"github.com/hashicorp/go-hclog"
)

// Stats counts per-file outcomes across a batch run. Counters are
// updated atomically by the workers.
type Stats struct {
	Total     int64
	Converted int64
	Patched   int64
	Skipped   int64
	Failed    int64
}

// Run processes files on a small worker pool. Each file is independent:
// a failure is counted and logged, never aborts the batch.
func Run(logger hclog.Logger, files []string, inRoot, outRoot string, tree bool, workers int) *Stats {
	if workers < 1 {
		workers = 1
	}

	jobs := make(chan string, len(files))
	st := &Stats{}
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go worker(logger, jobs, inRoot, outRoot, tree, st, &wg)
	}
	for _, f := range files {
		jobs <- f
	}
	close(jobs)
	wg.Wait()

	return st
}

func worker(logger hclog.Logger, jobs <-chan string, inRoot, outRoot string, tree bool, st *Stats, wg *sync.WaitGroup) {
	defer wg.Done()
	for inPath := range jobs {
		atomic.AddInt64(&st.Total, 1)

		outPath, err := OutPathFor(inPath, inRoot, outRoot, tree)
		if err != nil {
			atomic.AddInt64(&st.Failed, 1)
			logger.Error("❌ output path mapping failed", "file", inPath, "error", err)
			continue
		}

		result, err := ProcessFile(inPath, outPath)
		if err != nil {
			atomic.AddInt64(&st.Failed, 1)
			logger.Error("❌ conversion failed", "file", inPath, "error", err)
			continue
		}

		switch result {
		case ResultConverted:
			atomic.AddInt64(&st.Converted, 1)
			logger.Info("✅ converted", "file", inPath, "output", outPath)
		case ResultPatched:
			atomic.AddInt64(&st.Patched, 1)
			logger.Info("🔑 password patched", "file", inPath, "output", outPath)
		case ResultSkipped:
			atomic.AddInt64(&st.Skipped, 1)
			logger.Debug("⏭️ not a .bin or .nfc file, skipping", "file", inPath)
		}
	}
}
