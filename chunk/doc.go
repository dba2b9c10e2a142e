package chunk

/*

# Fixed capacity chunks

A Chunk is a single preallocated block of slots with an explicit filled
boundary. Slots `[0, Filled())` hold live elements in sequence order, slots
`[Filled(), Capacity())` hold stale or zero values and are never returned.

	+---+---+---+---+---+---+---+---+
	| a | b | c | d | . | . | . | . |
	+---+---+---+---+---+---+---+---+
	                  ^ filled      ^ capacity

The capacity is fixed by New and never changes. Storage is owned exclusively by
the chunk; Live is the only accessor that exposes it, and the window it returns
is read only by contract.

## Bulk moves

Append and AppendUnchecked move a whole slice into the free tail with a single
copy. This is what lets a composite structure migrate a full buffer of elements
in one step rather than with one Push per element.

AppendUnchecked places a burden of knowledge on the caller: the slice must fit
in Room(). When it does not, the call panics on the slice bounds check. It is a
programming error, not a condition to recover from.

## Shifting

Insert and Remove shift the live elements on the right of index with a single
overlapping copy. Their cost is proportional to the number of elements moved.
Inserting into a full chunk evicts the last element rather than failing.

*/
