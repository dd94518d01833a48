// Package channel implements the push channels of the client.
//
// A Registry owns one Connection per Key: the reserved notifications key and
// one key per rendered project. Each Connection:
//   - opens a transport session to its endpoint
//   - hands every received frame to the FrameHandler (the message router)
//   - on close, schedules a new session after a fixed delay, forever
//
// A closed session is never reused; the next attempt is a new session with a
// fresh State. Registry and Connection methods run on the event loop.
package channel
