package debug

const rssInBytes = true
