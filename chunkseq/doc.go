package chunkseq

/*

# Chunked sequences

A Sequence presents many fixed size chunks, plus one staging buffer, as a
single randomly indexable sequence that grows and shrinks at the tail. Growth
adds chunks and never moves the elements already stored, only the list of
chunk references grows.

## Layout

All chunks, and the buffer, share one capacity B chosen at construction.

	 chunk 0     chunk 1     chunk 2       buffer
	+---------+ +---------+ +---------+   +---------+
	| 0 .. B-1| |B .. 2B-1| |2B .. n  |   | tail    |
	+---------+ +---------+ +---------+   +---------+
	                          frontier

The frontier is the rightmost chunk holding any element. Every chunk before it
is full, which is the packing invariant. It makes addressing into the chunk
region plain arithmetic: index / B selects the chunk and index % B the slot.
When B is a power of two this is a shift and a mask.

## Push, pop and flush

Pushes land in the buffer. When a push finds the buffer full the buffer is
flushed: its content is split between the frontier chunk, until that chunk is
full, and the chunk after it, which becomes the new frontier. A flush costs
O(B) and happens once every B pushes.

Pops take from the buffer first and then from the frontier chunk. When the
frontier chunk empties the frontier steps back one chunk. The emptied chunk is
kept and reused by the next flush that reaches it.

Get and Pop report absence with a false ok rather than an error, an empty
sequence or an index past the end are ordinary conditions.

*/
