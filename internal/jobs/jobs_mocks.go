package jobs

//go:generate moq -pkg mocks -out ./mocks/subscriber_mock.go . Subscriber
//go:generate moq -pkg mocks -out ./mocks/completion_verifier_mock.go . CompletionVerifier
//go:generate moq -pkg mocks -out ./mocks/expiry_notifier_mock.go . ExpiryNotifier
