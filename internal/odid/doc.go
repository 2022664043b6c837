// Package odid implements the Open Drone ID broadcast remote-ID message
// codec: scalar quantisation, the seven 25-byte message variants, the
// message-pack container, and the per-aircraft aggregate and scheduler
// that sit on top of them.
package odid
