package bot

import "strconv"

func formatID(id int64) string { return strconv.FormatInt(id, 10) }

func formatPage(page int) string { return strconv.Itoa(page) }
