package blockingqueue

import (
	"sync"
	"testing"
)

// Benchmark pairs of Produce/Consume with a single consumer.
func BenchmarkProduceConsume(b *testing.B) {
	bq := New[int]()
	done := make(chan struct{})
	// Consumer
	go func() {
		for i := 0; i < b.N; i++ {
			_, _ = bq.Consume()
		}
		close(done)
	}()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = bq.Produce(i)
	}
	<-done
}

// Benchmark many blocked consumers, so most items go through hand-off.
func BenchmarkHandoffManyConsumers(b *testing.B) {
	const consumers = 8
	bq := New[int]()
	var wg sync.WaitGroup
	for c := 0; c < consumers; c++ {
		n := b.N / consumers
		if c < b.N%consumers {
			n++
		}
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for i := 0; i < n; i++ {
				_, _ = bq.Consume()
			}
		}(n)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = bq.Produce(i)
	}
	wg.Wait()
}

// Benchmark TryConsume over a pre-filled queue.
func BenchmarkTryConsume(b *testing.B) {
	bq := New[int]()
	for i := 0; i < b.N; i++ {
		_ = bq.Produce(i)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bq.TryConsume()
	}
}
