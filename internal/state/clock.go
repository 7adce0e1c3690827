package state

import "sync/atomic"

// nextSeq hands out journal sequence numbers. Sequence numbers start at 1
// and never repeat within a store.
func (st *Store) nextSeq() uint64 {
	return atomic.AddUint64(&st.seq, 1)
}

// emit stamps op with the next sequence number and passes it to OnOp.
func (st *Store) emit(op Op) {
	op.Seq = st.nextSeq()
	if st.OnOp != nil {
		st.OnOp(op)
	}
}
