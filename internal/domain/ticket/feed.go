package ticket

// FeedSubscription is a handle on a live ticket-change subscription.
// Unsubscribe is idempotent; once it returns, no further notification for
// this subscription may begin.
type FeedSubscription interface {
	Unsubscribe()
}

// Feed broadcasts ticket-change signals to interested subscribers. Channels
// are independent per ticket: publishing on one ticket never reaches
// subscribers of another.
type Feed interface {
	Subscribe(ticketID uint, notify func()) FeedSubscription
	Publish(ticketID uint)
}
