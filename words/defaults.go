package words

// DefaultList is the built-in word list used when neither the config
// nor the database supplies one.
var DefaultList = []string{"Test", "foo", "bar", "lorem", "ipsum"}
