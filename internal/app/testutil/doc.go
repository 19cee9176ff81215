// Package testutil provides testing utilities for the interview-coach application.
//
// It contains three groups of helpers:
//
// 1. Database helpers (db_helpers.go):
//   - NewTestStore: a SQLite session store in a temporary directory,
//     closed automatically when the test ends
//   - SeedSession: persists a session that is waiting for an answer
//
// 2. Mocks (mock_providers.go, mock_services.go):
//   - MockCompleter, MockTranscriber, MockSynthesizer, MockAudioStore:
//     testify mocks for the provider collaborators
//   - MockInterviewService: testify mock of the HTTP service layer
//
// 3. Fixtures (fixtures.go):
//   - Sample score reports and sessions used across packages
//
// # Usage Examples
//
//	func TestSomething(t *testing.T) {
//	    store := testutil.NewTestStore(t)
//	    completer := testutil.NewMockCompleter(t)
//	    completer.On("Complete", mock.Anything, mock.Anything, mock.Anything).
//	        Return("Tell me about yourself.", nil)
//	    ...
//	}
package testutil
