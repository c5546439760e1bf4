package notify

//go:generate moq -pkg mocks -out ./mocks/publisher_mock.go . Publisher
