package handoffq

import "testing"

func BenchmarkPush(b *testing.B) {
	s := NewStore[int]()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Push(i)
	}
}

func BenchmarkPushPop(b *testing.B) {
	s := NewStore[int]()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Push(i)
		if i%2 == 1 { // keep size bounded
			s.Pop()
		}
	}
}

func BenchmarkToSlice(b *testing.B) {
	s := NewStore[int]()
	for i := 0; i < 10_000; i++ {
		s.Push(i)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.ToSlice()
	}
}
