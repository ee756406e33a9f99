package notifiers

// Notifier notify dashboard publish results
type Notifier interface {
	Notify(*PublishResult)
	Close()
}
