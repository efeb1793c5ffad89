package catalog

import "github.com/mdrakibulhaquesardar/flx-cli/pkg/config"

var dataSource = mustParse("data_source", `import '../models/{{.Snake}}_model.dart';

abstract class {{.Pascal}}RemoteDataSource {
  Future<List<{{.Pascal}}Model>> get{{.PluralPascal}}();

  Future<{{.Pascal}}Model> get{{.Pascal}}ById(String id);
}

class {{.Pascal}}RemoteDataSourceImpl implements {{.Pascal}}RemoteDataSource {
  {{.Pascal}}RemoteDataSourceImpl({required this.client});

  final dynamic client;

  @override
  Future<List<{{.Pascal}}Model>> get{{.PluralPascal}}() async {
    // TODO: GET /{{.PluralSnake}} and decode the response body.
    throw UnimplementedError();
  }

  @override
  Future<{{.Pascal}}Model> get{{.Pascal}}ById(String id) async {
    // TODO: GET /{{.PluralSnake}}/$id and decode the response body.
    throw UnimplementedError();
  }
}
`)

// DataSource renders the remote data source interface and its stub
// implementation.
func DataSource(name string, cfg config.Config) string {
	return render(dataSource, newCtx(name, cfg))
}
