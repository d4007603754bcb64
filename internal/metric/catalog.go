package metric

// Field is one canonical metric with its ordered acceptable raw-name
// variants. Variants are matched case-insensitively and listed
// most-specific-first so that Resolve disambiguates related fields
// (full-body vs per-segment, mass vs percentage, control/target vs
// measured) before falling through to a generic name.
type Field struct {
	ID       string
	Variants []string
}

// Fields is the canonical registry: English technical names, Chinese
// clinical names and normalized slug forms accumulated from the export
// variants of different firmware versions. Static and immutable.
var Fields = []Field{
	{"name", []string{"姓名", "name"}},
	{"id", []string{"id", "身份證", "身分證", "測試編號"}},
	{"gender", []string{"gender", "性別"}},
	{"age", []string{"age", "年齡"}},
	{"height_cm", []string{"height", "身高", "height_cm", "heightcm"}},
	{"weight_kg", []string{"weight", "體重", "weight_kg", "weightkg"}},
	{"test_time", []string{"測試時間", "test date / time", "test datetime", "testdatetime"}},
	{"bmi", []string{"bmi", "體質指數"}},
	{"pbf", []string{"pbf", "percent body fat", "體脂率", "pbf_pct", "pbfpct"}},
	{"bfm", []string{"bfm", "body fat mass", "體脂肪量", "bfm_kg", "bfmkg"}},
	{"smm", []string{"smm", "skeletal muscle mass", "骨骼肌量", "smm_kg", "smmkg"}},
	{"smi", []string{"smi", "skeletal muscle index"}},
	{"smwt", []string{"smm/wt", "肌肉比"}},
	{"tbw", []string{"tbw", "total body water", "總水量", "tbw_kg", "tbwkg"}},
	{"icw", []string{"icw", "intracellular water", "icw_kg", "icwkg"}},
	{"ecw", []string{"ecw", "extracellular water", "ecw_kg", "ecwkg"}},
	{"ecw_tbw", []string{"ecw/tbw", "ecw 比 tbw", "水腫率", "ecw_tbw"}},
	{"ecw_tbw_ra", []string{"ecw/tbw of right arm", "右上肢 ecw/tbw", "rightarm_ecw_tbw"}},
	{"ecw_tbw_la", []string{"ecw/tbw of left arm", "左上肢 ecw/tbw", "leftarm_ecw_tbw"}},
	{"ecw_tbw_tr", []string{"ecw/tbw of trunk", "軀幹 ecw/tbw", "trunk_ecw_tbw"}},
	{"ecw_tbw_rl", []string{"ecw/tbw of right leg", "右下肢 ecw/tbw", "rightleg_ecw_tbw"}},
	{"ecw_tbw_ll", []string{"ecw/tbw of left leg", "左下肢 ecw/tbw", "leftleg_ecw_tbw"}},
	{"tbw_ra", []string{"tbw of right arm", "右上肢體水分", "rightarm_tbw", "rightarm_tbw_kg"}},
	{"tbw_la", []string{"tbw of left arm", "左上肢體水分", "leftarm_tbw", "leftarm_tbw_kg"}},
	{"tbw_tr", []string{"tbw of trunk", "軀幹體水分", "trunk_tbw", "trunk_tbw_kg"}},
	{"tbw_rl", []string{"tbw of right leg", "右下肢體水分", "rightleg_tbw", "rightleg_tbw_kg"}},
	{"tbw_ll", []string{"tbw of left leg", "左下肢體水分", "leftleg_tbw", "leftleg_tbw_kg"}},
	{"bmr", []string{"bmr", "basal metabolic rate", "基礎代謝", "bmr_kcal"}},
	{"whr", []string{"whr", "waist-hip ratio"}},
	{"vfa", []string{"vfa", "visceral fat area", "內臟脂肪面積", "vfa_cm2", "vfacm2"}},
	{"vfl", []string{"vfl", "visceral fat level", "vfl_level"}},
	{"inbody_score", []string{"inbody score", "inbody分數", "score"}},
	{"weight_control", []string{"weight control", "建議體重控制", "weight_control", "weightcontrol", "weight_control_kg", "weightcontrolkg"}},
	{"bfm_control", []string{"bfm control", "fat control", "建議減脂", "fat_control", "fat_control_kg", "fatcontrolkg"}},
	{"ffm_control", []string{"ffm control", "muscle control", "建議增肌", "肌肉控制", "muscle_control", "muscle_control_kg", "musclecontrolkg"}},
	{"target_weight", []string{"target weight", "目標體重", "target_weight", "target_weight_kg", "targetweightkg"}},
	{"lean_ra", []string{"lean mass of right arm", "右上肢骨骼肌量", "rightarm_lean", "rightarm_lean_kg", "rightarmleankg"}},
	{"lean_la", []string{"lean mass of left arm", "左上肢骨骼肌量", "leftarm_lean", "leftarm_lean_kg", "leftarmleankg"}},
	{"lean_rl", []string{"lean mass of right leg", "右下肢骨骼肌量", "rightleg_lean", "rightleg_lean_kg", "rightlegleankg"}},
	{"lean_ll", []string{"lean mass of left leg", "左下肢骨骼肌量", "leftleg_lean", "leftleg_lean_kg", "leftlegleankg"}},
	{"lean_trunk", []string{"lean mass of trunk", "軀幹骨骼肌量", "trunk_lean", "trunk_lean_kg", "trunkleankg"}},
	{"lean_ra_pct", []string{"lean mass(%) of right arm", "右上肢肌肉%"}},
	{"lean_la_pct", []string{"lean mass(%) of left arm", "左上肢肌肉%"}},
	{"lean_rl_pct", []string{"lean mass(%) of right leg", "右下肢肌肉%"}},
	{"lean_ll_pct", []string{"lean mass(%) of left leg", "左下肢肌肉%"}},
	{"lean_trunk_pct", []string{"lean mass(%) of trunk", "軀幹肌肉%"}},
	{"bfm_ra", []string{"bfm of right arm", "右上肢脂肪量", "rightarm_fat", "rightarm_fat_kg", "rightarmfatkg"}},
	{"bfm_la", []string{"bfm of left arm", "左上肢脂肪量", "leftarm_fat", "leftarm_fat_kg", "leftarmfatkg"}},
	{"bfm_rl", []string{"bfm of right leg", "右下肢脂肪量", "rightleg_fat", "rightleg_fat_kg", "rightlegfatkg"}},
	{"bfm_ll", []string{"bfm of left leg", "左下肢脂肪量", "leftleg_fat", "leftleg_fat_kg", "leftlegfatkg"}},
	{"bfm_trunk", []string{"bfm of trunk", "軀幹脂肪量", "trunk_fat", "trunk_fat_kg", "trunkfatkg"}},
	{"bfm_ra_pct", []string{"bfm% of right arm", "右上肢脂肪%", "rightarm_fat_pct"}},
	{"bfm_la_pct", []string{"bfm% of left arm", "左上肢脂肪%", "leftarm_fat_pct"}},
	{"bfm_trunk_pct", []string{"bfm% of trunk", "軀幹脂肪%", "trunk_fat_pct"}},
	{"bfm_rl_pct", []string{"bfm% of right leg", "右下肢脂肪%", "rightleg_fat_pct"}},
	{"bfm_ll_pct", []string{"bfm% of left leg", "左下肢脂肪%", "leftleg_fat_pct"}},
	{"obesity_degree", []string{"obesity degree", "肥胖度", "obesitydegree_pct"}},
	{"protein", []string{"protein", "蛋白質", "protein_kg"}},
	{"minerals", []string{"minerals", "mineral", "礦物質", "minerals_kg"}},
	{"ffmi", []string{"ffmi", "fat free mass index"}},
	{"fmi", []string{"fmi", "fat mass index"}},
	{"bcm", []string{"bcm", "body cell mass", "bcm_kg"}},
	{"tbw_ffm", []string{"tbw/ffm", "tbw_ffm", "tbw_ffm_pct"}},
	{"phase_ra", []string{"50khz-ra phase angle", "phase angle ra", "rightarm_phase_angle", "rightarm_phaseangle_deg"}},
	{"phase_la", []string{"50khz-la phase angle", "phase angle la", "leftarm_phase_angle", "leftarm_phaseangle_deg"}},
	{"phase_tr", []string{"50khz-tr phase angle", "phase angle trunk", "trunk_phase_angle", "trunk_phaseangle_deg"}},
	{"phase_rl", []string{"50khz-rl phase angle", "phase angle rl", "rightleg_phase_angle", "rightleg_phaseangle_deg"}},
	{"phase_ll", []string{"50khz-ll phase angle", "phase angle ll", "leftleg_phase_angle", "leftleg_phaseangle_deg"}},
}

var variantsByID = func() map[string][]string {
	m := make(map[string][]string, len(Fields))
	for _, f := range Fields {
		m[f.ID] = f.Variants
	}
	return m
}()

// Variants returns the ordered variant list for a canonical field id, or nil
// for an unknown id. Callers splat the result into Store lookups.
func Variants(id string) []string { return variantsByID[id] }

// ExtractionField pairs a summary field identifier with the ordered column
// substring patterns FindColumn uses on the raw tabular ingestion path. The
// identifiers double as the keys of the persisted summary mapping, and the
// canonical registry above carries their slug forms as variants so the two
// paths meet in the store.
type ExtractionField struct {
	ID       string
	Patterns []string
}

// ExtractionFields lists every column the ingestion pipeline attempts to
// resolve from a raw export, in output order.
var ExtractionFields = []ExtractionField{
	{"Name", []string{"name"}},
	{"ID", []string{" id", "member id"}},
	{"TestDateTime", []string{"test date", "date / time", "date/time"}},
	{"Height_cm", []string{"height"}},
	{"Gender", []string{"gender"}},
	{"Age", []string{"age"}},
	{"Weight_kg", []string{"weight"}},
	{"TBW_kg", []string{"tbw", "total body water"}},
	{"ICW_kg", []string{"icw", "intracellular water"}},
	{"ECW_kg", []string{"ecw", "extracellular water"}},
	{"Protein_kg", []string{"protein"}},
	{"Minerals_kg", []string{"mineral", "minerals"}},
	{"SMM_kg", []string{"skeletal muscle mass", "smm"}},
	{"BFM_kg", []string{"body fat mass", "bfm"}},
	{"PBF_pct", []string{"percent body fat", "pbf", "body fat (%)"}},
	{"BMI", []string{"bmi"}},
	{"BMR_kcal", []string{"basal metabolic rate", "bmr"}},
	{"WHR", []string{"whr", "waist-hip ratio"}},
	{"VFA_cm2", []string{"visceral fat area", "vfa"}},
	{"ECW_TBW", []string{"ecw/tbw", "extracellular water ratio"}},
	{"SMI", []string{"smi", "skeletal muscle index"}},
	{"Score", []string{"inbody score", "score"}},
	{"TargetWeight_kg", []string{"target weight"}},
	{"FatControl_kg", []string{"fat control", "bfm control"}},
	{"MuscleControl_kg", []string{"muscle control", "ffm control"}},
	{"VFL_level", []string{"visceral fat level", "vfl"}},
	{"ObesityDegree_pct", []string{"obesity degree"}},
	{"BCM_kg", []string{"bcm", "body cell mass"}},
	{"TBW_FFM_pct", []string{"tbw/ffm"}},
	{"FFMI", []string{"ffmi", "fat free mass index"}},
	{"FMI", []string{"fmi", "fat mass index"}},
	{"RightArm_Lean_kg", []string{"right arm lean", "lean of right arm", "lean mass of right arm"}},
	{"LeftArm_Lean_kg", []string{"left arm lean", "lean of left arm", "lean mass of left arm"}},
	{"Trunk_Lean_kg", []string{"trunk lean", "lean of trunk", "lean mass of trunk"}},
	{"RightLeg_Lean_kg", []string{"right leg lean", "lean of right leg", "lean mass of right leg"}},
	{"LeftLeg_Lean_kg", []string{"left leg lean", "lean of left leg", "lean mass of left leg"}},
	{"RightArm_Fat_kg", []string{"right arm fat", "fat of right arm", "bfm of right arm"}},
	{"LeftArm_Fat_kg", []string{"left arm fat", "fat of left arm", "bfm of left arm"}},
	{"Trunk_Fat_kg", []string{"trunk fat", "fat of trunk", "bfm of trunk"}},
	{"RightLeg_Fat_kg", []string{"right leg fat", "fat of right leg", "bfm of right leg"}},
	{"LeftLeg_Fat_kg", []string{"left leg fat", "fat of left leg", "bfm of left leg"}},
	{"RightArm_Fat_pct", []string{"bfm% of right arm", "right arm fat %"}},
	{"LeftArm_Fat_pct", []string{"bfm% of left arm", "left arm fat %"}},
	{"Trunk_Fat_pct", []string{"bfm% of trunk", "trunk fat %"}},
	{"RightLeg_Fat_pct", []string{"bfm% of right leg", "right leg fat %"}},
	{"LeftLeg_Fat_pct", []string{"bfm% of left leg", "left leg fat %"}},
	{"RightArm_ECW_TBW", []string{"ecw/tbw of right arm"}},
	{"LeftArm_ECW_TBW", []string{"ecw/tbw of left arm"}},
	{"Trunk_ECW_TBW", []string{"ecw/tbw of trunk"}},
	{"RightLeg_ECW_TBW", []string{"ecw/tbw of right leg"}},
	{"LeftLeg_ECW_TBW", []string{"ecw/tbw of left leg"}},
	{"RightArm_TBW_kg", []string{"tbw of right arm"}},
	{"LeftArm_TBW_kg", []string{"tbw of left arm"}},
	{"Trunk_TBW_kg", []string{"tbw of trunk"}},
	{"RightLeg_TBW_kg", []string{"tbw of right leg"}},
	{"LeftLeg_TBW_kg", []string{"tbw of left leg"}},
	{"RightArm_PhaseAngle_deg", []string{"50khz-ra phase angle"}},
	{"LeftArm_PhaseAngle_deg", []string{"50khz-la phase angle"}},
	{"Trunk_PhaseAngle_deg", []string{"50khz-tr phase angle"}},
	{"RightLeg_PhaseAngle_deg", []string{"50khz-rl phase angle"}},
	{"LeftLeg_PhaseAngle_deg", []string{"50khz-ll phase angle"}},
}
