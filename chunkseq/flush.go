package chunkseq

import (
	"github.com/forestrie/go-chunkseq/chunk"
)

func (s *Sequence[T]) addChunk() {
	s.chunks = append(s.chunks, chunk.New[T](s.maxBufferSize))
	if s.log != nil {
		s.log.Debugf("chunkseq: allocated chunk %d, capacity %d", len(s.chunks)-1, s.Capacity())
	}
}

// flush moves the whole buffer into the chunk list and empties it.
//
// The buffer content goes to the frontier chunk until that is full, and the
// remainder to the chunk after it, which becomes the new frontier. That chunk
// is allocated if it does not exist yet, otherwise it is an empty chunk left
// behind by earlier pops and is reused. Only the frontier can be left
// partially filled.
func (s *Sequence[T]) flush() {
	if s.buffer.IsEmpty() {
		return
	}
	if len(s.chunks) == 0 {
		s.addChunk()
	}

	pending := s.buffer.Live()
	target := s.chunks[s.frontier]

	room := target.Room()
	if len(pending) <= room {
		target.AppendUnchecked(pending)
		s.buffer.Erase()
		return
	}

	target.AppendUnchecked(pending[:room])
	if s.frontier == len(s.chunks)-1 {
		s.addChunk()
	}
	s.chunks[s.frontier+1].AppendUnchecked(pending[room:])
	s.frontier++

	if s.log != nil {
		s.log.Debugf("chunkseq: flush split %d/%d, frontier %d", room, len(pending)-room, s.frontier)
	}
	s.buffer.Erase()
}
