package systems

import (
	"runtime"
	"sync"
)

// defaultParallelThreshold is the minimum population to split a tick.
// Below this, single-threaded is faster due to goroutine overhead.
const defaultParallelThreshold = 2048

// tickChunk is a contiguous range of particles for one worker.
type tickChunk struct {
	particles []*Particle
	ts        tickState
}

// workerPool runs particle updates on persistent goroutines.
// Particles are independent and the noise field is read-only, so
// disjoint chunks can be updated concurrently.
type workerPool struct {
	numWorkers int
	threshold  int

	workChan chan tickChunk
	doneChan chan struct{}
	stopChan chan struct{}
	wg       sync.WaitGroup
	running  bool
}

func newWorkerPool(workers, threshold int) *workerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if threshold <= 0 {
		threshold = defaultParallelThreshold
	}
	return &workerPool{
		numWorkers: workers,
		threshold:  threshold,
	}
}

// startWorkers launches the worker goroutines.
func (p *workerPool) startWorkers(s *ParticleSystem) {
	if p.running {
		return
	}

	p.workChan = make(chan tickChunk, p.numWorkers)
	p.doneChan = make(chan struct{}, p.numWorkers)
	p.stopChan = make(chan struct{})
	p.running = true

	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker(s)
	}
}

// stopWorkers signals all workers to exit and waits for them.
func (p *workerPool) stopWorkers() {
	if !p.running {
		return
	}

	close(p.stopChan)
	p.wg.Wait()
	close(p.workChan)
	close(p.doneChan)
	p.running = false
}

func (p *workerPool) worker(s *ParticleSystem) {
	defer p.wg.Done()

	for {
		select {
		case <-p.stopChan:
			return
		case chunk, ok := <-p.workChan:
			if !ok {
				return
			}
			s.updateRange(chunk.particles, chunk.ts)
			p.doneChan <- struct{}{}
		}
	}
}

// run updates all particles and returns once every chunk is done.
func (p *workerPool) run(s *ParticleSystem, particles []*Particle, ts tickState) {
	p.startWorkers(s)

	n := len(particles)
	chunkSize := (n + p.numWorkers - 1) / p.numWorkers
	if chunkSize < 1 {
		chunkSize = 1
	}

	sent := 0
	for start := 0; start < n; start += chunkSize {
		end := start + chunkSize
		if end > n {
			end = n
		}
		p.workChan <- tickChunk{particles: particles[start:end], ts: ts}
		sent++
	}

	for i := 0; i < sent; i++ {
		<-p.doneChan
	}
}
