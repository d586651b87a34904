package actionserver

// Version is the released version of the action server.
const Version = "0.1.0"
