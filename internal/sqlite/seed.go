package sqlite

import "github.com/medlink/pharmtrack/internal/domain/project"

// SeedProjects returns the default collection written to storage on
// first access. The portfolio mirrors a Chinese pharma distribution
// context; p1 through p3 carry monthly history.
func SeedProjects() []project.Project {
	return []project.Project{
		{
			ID:           "p1",
			Name:         "心血管-立普妥专项推广",
			Manufacturer: "辉瑞制药 (Pfizer)",
			Products:     "阿托伐他汀钙片 (立普妥), 络活喜",
			StartDate:    "2023-01-01",
			Status:       project.StatusActive,
			Description:  "针对核心城市三甲医院的心血管产品线深度分销与学术推广协助。",
			MonthlyData: []project.MonthlyRecord{
				{Month: "2023-08", ActualSales: 120000, TargetSales: 110000, HospitalCoverage: 45, Activities: "北京KOL学术研讨会"},
				{Month: "2023-09", ActualSales: 115000, TargetSales: 115000, HospitalCoverage: 48, Activities: "区域销售代表培训"},
				{Month: "2023-10", ActualSales: 130000, TargetSales: 120000, HospitalCoverage: 50, Activities: "新增2家三甲医院进药"},
			},
		},
		{
			ID:           "p2",
			Name:         "神经科-新药上市项目",
			Manufacturer: "诺华制药 (Novartis)",
			Products:     "依瑞奈尤单抗, 芬戈莫德",
			StartDate:    "2023-03-15",
			Status:       project.StatusActive,
			Description:  "协助神经内科新特药的市场准入与早期患者主要渠道铺货。",
			MonthlyData: []project.MonthlyRecord{
				{Month: "2023-08", ActualSales: 50000, TargetSales: 60000, HospitalCoverage: 12, Activities: "新药上市发布会"},
				{Month: "2023-09", ActualSales: 58000, TargetSales: 65000, HospitalCoverage: 15, Activities: "各省招标挂网跟进"},
				{Month: "2023-10", ActualSales: 70000, TargetSales: 70000, HospitalCoverage: 20, Activities: "城市学术沙龙"},
			},
		},
		{
			ID:           "p3",
			Name:         "肿瘤-生物制剂DTP项目",
			Manufacturer: "罗氏制药 (Roche)",
			Products:     "利妥昔单抗, 贝伐珠单抗",
			StartDate:    "2022-11-01",
			Status:       project.StatusActive,
			Description:  "肿瘤生物制剂的DTP药房专项配送与患者管理服务。",
			MonthlyData: []project.MonthlyRecord{
				{Month: "2023-09", ActualSales: 450000, TargetSales: 400000, HospitalCoverage: 80, Activities: "全国肿瘤年会展台支持"},
				{Month: "2023-10", ActualSales: 460000, TargetSales: 420000, HospitalCoverage: 82, Activities: "患者援助项目(PAP)优化"},
			},
		},
		{
			ID:           "p4",
			Name:         "糖尿病-基层市场扩面",
			Manufacturer: "赛诺菲 (Sanofi)",
			Products:     "甘精胰岛素, 二甲双胍缓释片",
			StartDate:    "2023-02-01",
			Status:       project.StatusActive,
			Description:  "针对二三线城市及县域市场的广覆盖推广计划。",
			MonthlyData:  []project.MonthlyRecord{},
		},
		{
			ID:           "p5",
			Name:         "呼吸科-OTC连锁合作",
			Manufacturer: "葛兰素史克 (GSK)",
			Products:     "辅舒良, 舒利迭",
			StartDate:    "2023-06-01",
			Status:       project.StatusPending,
			Description:  "与大型连锁药店建立战略合作，提升呼吸类产品OTC份额。",
			MonthlyData:  []project.MonthlyRecord{},
		},
		{
			ID:           "p6",
			Name:         "皮肤科-特药专家维护",
			Manufacturer: "强生 (J&J)",
			Products:     "乌司奴单抗, 润肤剂系列",
			StartDate:    "2023-01-20",
			Status:       project.StatusActive,
			Description:  "皮肤科专家学术网络建设与维护。",
			MonthlyData:  []project.MonthlyRecord{},
		},
		{
			ID:           "p7",
			Name:         "消化科-针剂院内配送",
			Manufacturer: "武田制药 (Takeda)",
			Products:     "泮托拉唑针剂, 维得利珠单抗",
			StartDate:    "2023-04-10",
			Status:       project.StatusActive,
			Description:  "医院静脉输液产品的供应链优化与库存管理。",
			MonthlyData:  []project.MonthlyRecord{},
		},
		{
			ID:           "p8",
			Name:         "免疫-疫苗冷链物流",
			Manufacturer: "艾伯维 (AbbVie)",
			Products:     "修美乐, 瑞福",
			StartDate:    "2023-05-05",
			Status:       project.StatusActive,
			Description:  "生物制剂与疫苗的冷链物流保障项目。",
			MonthlyData:  []project.MonthlyRecord{},
		},
		{
			ID:           "p9",
			Name:         "骨科-高值耗材集采",
			Manufacturer: "史赛克 (Stryker)",
			Products:     "膝关节假体, 骨水泥",
			StartDate:    "2023-07-01",
			Status:       project.StatusActive,
			Description:  "应对国家高值医用耗材集中采购的配送服务落地。",
			MonthlyData:  []project.MonthlyRecord{},
		},
	}
}
