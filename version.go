package scheme

// Version is the interpreter release tag, printed by `scheme version`.
const Version = "0.2.0"
