package scanner

import "projstat/internal/model"

// Aggregate 计算项目级总计以及最长/最短文件。
//
// 单次遍历，比较使用严格的 > 与 <，行数相同时先出现的记录胜出。
// 空输入得到全零总计，Longest/Shortest 为 nil。
func Aggregate(records []model.FileRecord) model.ScanResult {
	if records == nil {
		records = make([]model.FileRecord, 0)
	}

	result := model.ScanResult{
		Files:  records,
		Errors: make([]model.ScanError, 0),
	}

	for i := range result.Files {
		record := &result.Files[i]

		result.TotalLines += record.LineCount
		result.TotalBlankLines += record.BlankLineCount

		if result.Longest == nil || record.LineCount > result.Longest.LineCount {
			result.Longest = record
		}
		if result.Shortest == nil || record.LineCount < result.Shortest.LineCount {
			result.Shortest = record
		}
	}

	return result
}
