// Package agex runs the roster age adjustment pipeline.
//
// A run has two independent inputs: the roster lines (read from a file)
// and a signed integer adjustment (read from a prompt). Both are fetched
// concurrently and joined; after the rendezvous every record's age is
// shifted by the adjustment, one notice is emitted per record, and the
// roster is written back in place. The sink is invoked at most once and
// only after every earlier stage has succeeded.
//
// Two coordinator styles are provided with identical semantics:
// Pipeline.Run joins asyncx futures, Pipeline.RunConversation exchanges
// messages over channels.
package agex
