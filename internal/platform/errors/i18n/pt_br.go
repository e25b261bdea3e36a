package i18n

var messagesPtBR = map[Code]string{
	CodeProjectNameEmpty:          "O nome do projeto é obrigatório.",
	CodeProjectDescriptionEmpty:   "A descrição do projeto é obrigatória.",
	CodeProjectNotFound:           "O projeto {{.project_id}} não foi encontrado.",
	CodeProjectSettled:            "O projeto {{.project_id}} já foi liquidado.",
	CodeAddressEmpty:              "Um endereço é obrigatório.",
	CodeContributionAmountInvalid: "O valor da contribuição deve ser maior que zero.",
	CodePoolAmountInvalid:         "O valor do fundo de contrapartida deve ser maior que zero.",
	CodePoolEmpty:                 "O fundo de contrapartida está vazio.",
	CodePoolInsufficient:          "O fundo de contrapartida não cobre a contrapartida calculada de {{.matching_amount}}.",
	CodeNotAdmin:                  "Apenas o administrador do livro-razão pode executar esta operação.",
	CodeArithmeticOverflow:        "O cálculo excedeu o intervalo numérico suportado.",
	CodePayoutFailed:              "O pagamento ao criador do projeto falhou; nenhum fundo foi movido.",
	CodeStorageFailure:            "O livro-razão não conseguiu persistir a operação.",
}
